package algorithms

import (
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

// ParticleState is a detached copy of a particle
type ParticleState struct {
	ID       int
	Position framework.Vector
	Velocity framework.Vector
	Fitness  float64

	PersonalBestPosition framework.Vector
	PersonalBestValue    float64
}

func newParticleState(p *Particle) ParticleState {
	return ParticleState{
		ID:                   p.ID,
		Position:             p.Position.Clone(),
		Velocity:             p.Velocity.Clone(),
		Fitness:              p.Fitness,
		PersonalBestPosition: p.PersonalBestPosition.Clone(),
		PersonalBestValue:    p.PersonalBestValue,
	}
}

// Heading returns the velocity magnitude and angle, see Particle.Heading
func (s ParticleState) Heading() (magnitude, angle float64) {
	return heading(s.Velocity)
}

// Snapshot is a read-only view of the swarm after an iteration.
// Nothing in it aliases engine state.
type Snapshot struct {
	Fitness   string
	Iteration int
	Particles []ParticleState

	GlobalFittestID    int
	GlobalBestPosition framework.Vector
	GlobalBestValue    float64
}

// Snapshot copies the current swarm state
func (p *PSO) Snapshot() Snapshot {
	particles := make([]ParticleState, len(p.swarm))
	for i, par := range p.swarm {
		particles[i] = newParticleState(par)
	}
	best := p.swarm[p.globalFittest]
	return Snapshot{
		Fitness:            p.fitness.Name(),
		Iteration:          p.iteration,
		Particles:          particles,
		GlobalFittestID:    best.ID,
		GlobalBestPosition: best.PersonalBestPosition.Clone(),
		GlobalBestValue:    best.PersonalBestValue,
	}
}

// Positions returns the particle positions in swarm order
func (s Snapshot) Positions() []framework.Vector {
	out := make([]framework.Vector, len(s.Particles))
	for i, p := range s.Particles {
		out[i] = p.Position
	}
	return out
}
