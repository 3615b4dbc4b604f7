package algorithms

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

// State is the lifecycle state of the engine
type State int

const (
	// Initialized means the swarm was freshly sampled and not moved yet
	Initialized State = iota
	// Improving means at least one Improve call happened since sampling
	Improving
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "Initialized"
	case Improving:
		return "Improving"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// PSO is a locally informed particle swarm bound to one fitness function.
// It is not safe for concurrent use.
type PSO struct {
	fitness framework.FitnessFunction
	config  PSOConfig
	rng     *rand.Rand

	swarm         []*Particle
	numInformants int
	globalFittest int

	state     State
	iteration int
	history   []float64
}

// NewPSO samples a swarm for fitness according to config
func NewPSO(config PSOConfig, fitness framework.FitnessFunction) (*PSO, error) {
	if fitness == nil {
		return nil, fmt.Errorf("fitness function is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid PSO config: %w", err)
	}
	if config.UpdateMode == "" {
		config.UpdateMode = Synchronous
	}
	if config.VelocityRange == (framework.Bounds{}) {
		config.VelocityRange = DefaultVelocityRange
	}
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	p := &PSO{
		fitness:       fitness,
		config:        config,
		rng:           rand.New(rand.NewSource(seed)),
		numInformants: config.NumInformants,
	}
	if maxInformants := config.PopulationSize - 1; p.numInformants > maxInformants {
		klog.V(3).InfoS("Clamping number of informants to swarm size",
			"requested", config.NumInformants, "clamped", maxInformants)
		p.numInformants = maxInformants
	}
	p.populate()

	klog.V(2).InfoS("PSO swarm created",
		"fitness", fitness.Name(),
		"populationSize", config.PopulationSize,
		"numInformants", p.numInformants,
		"updateMode", config.UpdateMode,
		"globalBest", p.GlobalBestValue())
	return p, nil
}

// populate samples positions uniformly in the domain and velocities uniformly
// in the velocity range, then establishes the global best.
func (p *PSO) populate() {
	axes := p.fitness.Domain().Axes()
	vr := p.config.VelocityRange

	p.swarm = make([]*Particle, p.config.PopulationSize)
	for i := range p.swarm {
		pos := make(framework.Vector, p.config.VectorLength)
		vel := make(framework.Vector, p.config.VectorLength)
		for d := range pos {
			pos[d] = axes[d].L + p.rng.Float64()*axes[d].Width()
			vel[d] = vr.L + p.rng.Float64()*vr.Width()
		}
		p.swarm[i] = NewParticle(p.fitness, vel, pos, i)
	}

	p.globalFittest = p.findGlobalFittest()
	p.state = Initialized
	p.iteration = 0
	p.history = []float64{p.GlobalBestValue()}
}

// Repopulate discards the swarm and samples a new one
func (p *PSO) Repopulate() {
	p.populate()
	klog.V(2).InfoS("PSO swarm repopulated", "fitness", p.fitness.Name(), "globalBest", p.GlobalBestValue())
}

// Improve moves every particle once:
//
//	v' = wc*v + wp*r1*(pbest-x) + ws*r2*(social-x) + wg*r3*(gbest-x)
//	x' = x + scale*v'
//
// r1, r2 and r3 are drawn once per particle and shared by all axes. The social
// term uses the best personal best among the particle's informants and is
// dropped when the particle has none. The global term always uses the global
// best from before the call.
func (p *PSO) Improve(w Weights) {
	n := len(p.swarm)
	globalBest := p.swarm[p.globalFittest].PersonalBestPosition.Clone()

	bestValues := make([]float64, n)
	bestPositions := make([]framework.Vector, n)
	for i, par := range p.swarm {
		bestValues[i] = par.PersonalBestValue
		bestPositions[i] = par.PersonalBestPosition
	}

	type move struct {
		vel, pos framework.Vector
	}
	var moves []move
	if p.config.UpdateMode == Synchronous {
		moves = make([]move, n)
	}

	for i, par := range p.swarm {
		vel, pos := p.move(par, w, p.SelectInformants(i), bestValues, bestPositions, globalBest)
		if p.config.UpdateMode == Asynchronous {
			par.Update(vel, pos)
			bestValues[i] = par.PersonalBestValue
			bestPositions[i] = par.PersonalBestPosition
			continue
		}
		moves[i] = move{vel: vel, pos: pos}
	}
	for i, m := range moves {
		p.swarm[i].Update(m.vel, m.pos)
	}

	p.globalFittest = p.findGlobalFittest()
	p.iteration++
	p.state = Improving
	p.history = append(p.history, p.GlobalBestValue())

	klog.V(5).InfoS("PSO iteration complete",
		"iteration", p.iteration,
		"globalFittest", p.globalFittest,
		"globalBest", p.GlobalBestValue())
}

func (p *PSO) move(par *Particle, w Weights, informants []int, bestValues []float64, bestPositions []framework.Vector, globalBest framework.Vector) (framework.Vector, framework.Vector) {
	social := fittest(bestValues, informants)
	r1 := p.rng.Float64()
	r2 := p.rng.Float64()
	r3 := p.rng.Float64()

	vel := make(framework.Vector, len(par.Position))
	pos := make(framework.Vector, len(par.Position))
	for d, x := range par.Position {
		v := w.Current*par.Velocity[d] +
			w.Personal*r1*(par.PersonalBestPosition[d]-x) +
			w.Global*r3*(globalBest[d]-x)
		if social >= 0 {
			v += w.Social * r2 * (bestPositions[social][d] - x)
		}
		vel[d] = v
		pos[d] = x + w.ScaleUpdateStep*v
	}
	return vel, pos
}

// SelectInformants samples the informants of particle i: NumInformants other
// particles without replacement, or all others in swarm order when the
// neighbourhood covers the whole swarm.
func (p *PSO) SelectInformants(i int) []int {
	return sampleInformants(p.rng, len(p.swarm), i, p.numInformants)
}

func (p *PSO) findGlobalFittest() int {
	best := 0
	for i, par := range p.swarm {
		if par.PersonalBestValue < p.swarm[best].PersonalBestValue {
			best = i
		}
	}
	return best
}

// GlobalFittest returns a copy of the particle holding the lowest personal best
func (p *PSO) GlobalFittest() ParticleState {
	return newParticleState(p.swarm[p.globalFittest])
}

// GlobalBestValue returns the lowest personal best value in the swarm
func (p *PSO) GlobalBestValue() float64 {
	return p.swarm[p.globalFittest].PersonalBestValue
}

// Fitness returns the landscape the swarm is bound to
func (p *PSO) Fitness() framework.FitnessFunction {
	return p.fitness
}

// Config returns the configuration the engine was built with, defaults applied
func (p *PSO) Config() PSOConfig {
	return p.config
}

// NumInformants returns the informant count after clamping to the swarm size
func (p *PSO) NumInformants() int {
	return p.numInformants
}

// Size returns the number of particles
func (p *PSO) Size() int {
	return len(p.swarm)
}

// State returns the lifecycle state
func (p *PSO) State() State {
	return p.state
}

// Iteration returns the number of Improve calls since the swarm was sampled
func (p *PSO) Iteration() int {
	return p.iteration
}

// History returns the global best value after sampling followed by the value
// after each Improve call.
func (p *PSO) History() []float64 {
	out := make([]float64, len(p.history))
	copy(out, p.history)
	return out
}
