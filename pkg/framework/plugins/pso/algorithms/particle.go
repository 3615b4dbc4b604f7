package algorithms

import (
	"fmt"
	"math"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

// Particle is one member of the swarm. Fitness always holds the
// value at Position, and PersonalBestValue is the lowest value the
// particle has ever observed.
type Particle struct {
	ID       int
	Position framework.Vector
	Velocity framework.Vector
	Fitness  float64

	PersonalBestPosition framework.Vector
	PersonalBestValue    float64

	fitness framework.FitnessFunction
}

// NewParticle creates a particle at position and evaluates it there.
// The vectors are copied.
func NewParticle(fitness framework.FitnessFunction, velocity, position framework.Vector, id int) *Particle {
	val := fitness.Evaluate(position)
	return &Particle{
		ID:                   id,
		Position:             position.Clone(),
		Velocity:             velocity.Clone(),
		Fitness:              val,
		PersonalBestPosition: position.Clone(),
		PersonalBestValue:    val,
		fitness:              fitness,
	}
}

// Update moves the particle and records a new personal best if the
// new position is strictly better.
func (p *Particle) Update(velocity, position framework.Vector) {
	p.Velocity = velocity.Clone()
	p.Position = position.Clone()
	p.Fitness = p.fitness.Evaluate(p.Position)
	if p.Fitness < p.PersonalBestValue {
		p.PersonalBestPosition = p.Position.Clone()
		p.PersonalBestValue = p.Fitness
	}
}

// Heading returns the magnitude of the velocity and its angle in radians
// measured as pi/2 - atan2(x, y). A zero velocity has angle 0.
func (p *Particle) Heading() (magnitude, angle float64) {
	return heading(p.Velocity)
}

func heading(v framework.Vector) (float64, float64) {
	if len(v) < 2 {
		return 0, 0
	}
	mag := math.Hypot(v[0], v[1])
	if mag == 0 {
		return 0, 0
	}
	return mag, math.Pi/2 - math.Atan2(v[0]/mag, v[1]/mag)
}

func (p *Particle) String() string {
	return fmt.Sprintf("%d: x=%.3f v=%.3f f=%.4f bx=%.3f bf=%.4f",
		p.ID, p.Position, p.Velocity, p.Fitness, p.PersonalBestPosition, p.PersonalBestValue)
}
