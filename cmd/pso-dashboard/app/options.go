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

package app

import (
	"time"

	"github.com/spf13/pflag"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	logsapi "k8s.io/component-base/logs/api/v1"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/pso-dashboard/pkg/api/v1alpha1"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso"
)

// Options holds the command line configuration. Flags that are set on the
// command line override values from the config file.
type Options struct {
	Logging    *logsapi.LoggingConfiguration
	ConfigFile string

	Fitness         string
	PopulationSize  int32
	NumInformants   int32
	Current         float64
	PersonalBest    float64
	SocialBest      float64
	GlobalBest      float64
	ScaleUpdateStep float64
	UpdateMode      string
	EvolveDuration  time.Duration
	TickInterval    time.Duration
	Seed            uint64
}

// NewOptions returns options holding the session defaults
func NewOptions() *Options {
	w := pso.DefaultWeights()
	return &Options{
		Logging:         logsapi.NewLoggingConfiguration(),
		Fitness:         pso.DefaultFitness,
		PopulationSize:  pso.DefaultPopulationSize,
		NumInformants:   pso.DefaultNumInformants,
		Current:         *w.Current,
		PersonalBest:    *w.PersonalBest,
		SocialBest:      *w.SocialBest,
		GlobalBest:      *w.GlobalBest,
		ScaleUpdateStep: pso.DefaultScaleUpdateStep,
		UpdateMode:      string(v1alpha1.UpdateModeSynchronous),
		EvolveDuration:  pso.DefaultEvolveDuration,
		TickInterval:    pso.DefaultTickInterval,
	}
}

// AddFlags adds the session flags to fs
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "File with PSOArgs (YAML or JSON). Flags override its values.")
	fs.StringVar(&o.Fitness, "fitness", o.Fitness, "Fitness function to minimize.")
	fs.Int32Var(&o.PopulationSize, "population-size", o.PopulationSize, "Number of particles in the swarm.")
	fs.Int32Var(&o.NumInformants, "num-informants", o.NumInformants, "Number of informants consulted by each particle.")
	fs.Float64Var(&o.Current, "follow-current", o.Current, "Weight of the particle's current velocity.")
	fs.Float64Var(&o.PersonalBest, "follow-personal-best", o.PersonalBest, "Weight of the pull towards the personal best.")
	fs.Float64Var(&o.SocialBest, "follow-social-best", o.SocialBest, "Weight of the pull towards the best informant.")
	fs.Float64Var(&o.GlobalBest, "follow-global-best", o.GlobalBest, "Weight of the pull towards the global best.")
	fs.Float64Var(&o.ScaleUpdateStep, "scale-update-step", o.ScaleUpdateStep, "Scale applied to the velocity when moving.")
	fs.StringVar(&o.UpdateMode, "update-mode", o.UpdateMode, "Synchronous or Asynchronous swarm updates.")
	fs.DurationVar(&o.EvolveDuration, "evolve-duration", o.EvolveDuration, "How long to keep improving the swarm.")
	fs.DurationVar(&o.TickInterval, "tick-interval", o.TickInterval, "Time between two improvements.")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "Random seed, 0 seeds from the clock.")
}

// Args builds the session arguments from the config file and the flags
// that were explicitly set in fs.
func (o *Options) Args(fs *pflag.FlagSet) (*v1alpha1.PSOArgs, error) {
	args := pso.NewDefaultArgs()
	if o.ConfigFile != "" {
		loaded, err := pso.LoadArgs(o.ConfigFile)
		if err != nil {
			return nil, err
		}
		args = loaded
	}

	set := func(name string) bool {
		return o.ConfigFile == "" || fs.Changed(name)
	}
	if set("fitness") {
		args.Fitness = o.Fitness
	}
	if set("population-size") {
		args.PopulationSize = o.PopulationSize
	}
	if set("num-informants") {
		args.NumInformants = ptr.To(o.NumInformants)
	}
	if set("follow-current") {
		args.Weights.Current = ptr.To(o.Current)
	}
	if set("follow-personal-best") {
		args.Weights.PersonalBest = ptr.To(o.PersonalBest)
	}
	if set("follow-social-best") {
		args.Weights.SocialBest = ptr.To(o.SocialBest)
	}
	if set("follow-global-best") {
		args.Weights.GlobalBest = ptr.To(o.GlobalBest)
	}
	if set("scale-update-step") {
		args.ScaleUpdateStep = ptr.To(o.ScaleUpdateStep)
	}
	if set("update-mode") {
		args.UpdateMode = v1alpha1.UpdateMode(o.UpdateMode)
	}
	if set("evolve-duration") {
		args.EvolveDuration = &metav1.Duration{Duration: o.EvolveDuration}
	}
	if set("tick-interval") {
		args.TickInterval = &metav1.Duration{Duration: o.TickInterval}
	}
	if set("seed") {
		args.Seed = o.Seed
	}

	if err := pso.ValidatePSOArgs(args); err != nil {
		return nil, err
	}
	return args, nil
}
