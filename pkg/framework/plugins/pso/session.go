/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pso

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/mihai-snyk/pso-dashboard/pkg/api/v1alpha1"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/algorithms"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/benchmarks"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/landscape"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/metrics"
)

const (
	PluginName = "PSO"

	tracerName = "github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso"
)

// Session owns the swarm shown by a dashboard. It holds the current
// arguments, replaces the engine wholesale when a new population is requested
// or the landscape changes, and steps the engine on request.
// A Session is not safe for concurrent use.
type Session struct {
	logger klog.Logger
	args   *v1alpha1.PSOArgs

	fitness     framework.FitnessFunction
	engine      *algorithms.PSO
	populations uint64

	landscapes *landscape.Cache
	recorder   *metrics.Recorder
	tracer     trace.Tracer
	clock      clock.WithTicker
}

// Option configures a Session
type Option func(*Session)

// WithRecorder reports progress to the given metrics recorder
func WithRecorder(r *metrics.Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithTracerProvider sets the provider of the tracer used around every step
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Session) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithClock replaces the clock driving Begin
func WithClock(c clock.WithTicker) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// New builds a session from its arguments. args is copied, defaulted and
// validated; the first swarm is sampled immediately.
func New(ctx context.Context, args *v1alpha1.PSOArgs, opts ...Option) (*Session, error) {
	if args == nil {
		args = NewDefaultArgs()
	}
	args = args.DeepCopy()
	scheme.Default(args)
	if err := ValidatePSOArgs(args); err != nil {
		return nil, fmt.Errorf("invalid PSO args: %w", err)
	}
	fitness, err := benchmarks.ByName(args.Fitness)
	if err != nil {
		return nil, err
	}

	s := &Session{
		logger:     klog.FromContext(ctx).WithValues("plugin", PluginName),
		args:       args,
		fitness:    fitness,
		landscapes: landscape.NewCache(0),
		tracer:     otel.GetTracerProvider().Tracer(tracerName),
		clock:      clock.RealClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.NewPopulation(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name retrieves the plugin name
func (s *Session) Name() string {
	return PluginName
}

// Args returns a copy of the current arguments
func (s *Session) Args() *v1alpha1.PSOArgs {
	return s.args.DeepCopy()
}

// Fitness returns the landscape currently being minimized
func (s *Session) Fitness() framework.FitnessFunction {
	return s.fitness
}

// NewPopulation replaces the engine with a freshly sampled swarm using the
// current population size and informant count. With a fixed seed every new
// population still differs from the previous one, but runs are repeatable.
func (s *Session) NewPopulation() error {
	seed := s.args.Seed
	if seed != 0 {
		seed += s.populations
	}
	engine, err := algorithms.NewPSO(EngineConfig(s.args, seed), s.fitness)
	if err != nil {
		return fmt.Errorf("failed to create swarm: %w", err)
	}
	s.engine = engine
	s.populations++
	s.recorder.ObservePopulation(s.fitness.Name(), engine.Size(), engine.GlobalBestValue())

	s.logger.V(1).Info("New population",
		"fitness", s.fitness.Name(),
		"populationSize", engine.Size(),
		"numInformants", engine.NumInformants(),
		"globalBest", engine.GlobalBestValue())
	return nil
}

// SelectFitness switches the landscape. Cached landscape grids are dropped
// and a new swarm is sampled on the new domain.
func (s *Session) SelectFitness(name string) error {
	return s.UpdateArgs(func(args *v1alpha1.PSOArgs) {
		args.Fitness = name
	})
}

// UpdateArgs applies mutate to a copy of the arguments and installs the copy
// if it is valid. Weights and the update step are picked up by the next step;
// population size and informants by the next NewPopulation or Begin. A
// landscape change takes effect immediately.
func (s *Session) UpdateArgs(mutate func(*v1alpha1.PSOArgs)) error {
	args := s.args.DeepCopy()
	mutate(args)
	scheme.Default(args)
	if err := ValidatePSOArgs(args); err != nil {
		return fmt.Errorf("invalid PSO args: %w", err)
	}

	fitnessChanged := !strings.EqualFold(args.Fitness, s.args.Fitness)
	modeChanged := args.UpdateMode != s.args.UpdateMode
	s.args = args
	if fitnessChanged {
		fitness, err := benchmarks.ByName(args.Fitness)
		if err != nil {
			return err
		}
		s.fitness = fitness
		s.landscapes.Invalidate()
		s.logger.Info("Fitness function changed", "fitness", fitness.Name(), "domain", fitness.Domain().String())
	}
	if fitnessChanged || modeChanged {
		return s.NewPopulation()
	}
	return nil
}

// ResetParameters restores the default weights, update step, population
// size, evolve duration and informant count. The running swarm is kept.
func (s *Session) ResetParameters() {
	resetParameters(s.args)
	s.logger.V(1).Info("Parameters reset to defaults")
}

// NextGeneration moves the swarm once with the current weights
func (s *Session) NextGeneration(ctx context.Context) algorithms.Snapshot {
	_, span := s.tracer.Start(ctx, "PSO.Improve", trace.WithAttributes(
		attribute.String("fitness", s.fitness.Name()),
		attribute.Int("iteration", s.engine.Iteration()+1),
		attribute.Int("populationSize", s.engine.Size()),
	))
	defer span.End()

	start := s.clock.Now()
	s.engine.Improve(EngineWeights(s.args))
	s.recorder.ObserveImprove(s.fitness.Name(), s.engine.GlobalBestValue(), s.clock.Since(start))

	span.SetAttributes(attribute.Float64("globalBest", s.engine.GlobalBestValue()))
	return s.engine.Snapshot()
}

// Begin samples a new swarm from the current arguments and improves it every
// TickInterval until EvolveDuration has elapsed or ctx is done. observer, if
// not nil, receives the snapshot after every step. It returns the number of
// steps taken.
func (s *Session) Begin(ctx context.Context, observer func(algorithms.Snapshot)) (int, error) {
	if err := s.NewPopulation(); err != nil {
		return 0, err
	}

	duration := s.args.EvolveDuration.Duration
	interval := s.args.TickInterval.Duration
	logger := s.logger.WithValues("fitness", s.fitness.Name())
	logger.Info("Begin improving", "duration", duration, "tickInterval", interval)

	steps := 0
	if duration <= 0 {
		return steps, nil
	}

	deadline := s.clock.After(duration)
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Improving cancelled", "steps", steps, "globalBest", s.engine.GlobalBestValue())
			return steps, ctx.Err()
		case <-deadline:
			logger.Info("Improving finished", "steps", steps, "globalBest", s.engine.GlobalBestValue())
			return steps, nil
		case <-ticker.C():
			snap := s.NextGeneration(ctx)
			steps++
			if observer != nil {
				observer(snap)
			}
		}
	}
}

// Snapshot returns the current swarm state
func (s *Session) Snapshot() algorithms.Snapshot {
	return s.engine.Snapshot()
}

// History returns the global best after sampling and after every step
func (s *Session) History() []float64 {
	return s.engine.History()
}

// Landscape returns the evaluation grid of the current landscape. Grids are
// cached until the landscape changes.
func (s *Session) Landscape(resolution int) *landscape.Grid {
	return s.landscapes.Get(s.fitness, resolution)
}
