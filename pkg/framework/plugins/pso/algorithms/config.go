package algorithms

import (
	"fmt"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

const (
	Name = "PSO"

	DefaultVectorLength  = 2
	DefaultNumInformants = 6
)

// DefaultVelocityRange is the per-axis range initial velocities are drawn
// from. It does not depend on the landscape domain.
var DefaultVelocityRange = framework.Bounds{L: -2, H: 2}

// UpdateMode selects which personal bests a particle sees while the swarm
// is being moved.
type UpdateMode string

const (
	// Synchronous computes every move from the personal bests as they were
	// before the call, then applies all moves.
	Synchronous UpdateMode = "Synchronous"
	// Asynchronous moves particles one at a time in swarm order, so later
	// particles see personal bests already improved in the same call.
	Asynchronous UpdateMode = "Asynchronous"
)

// PSOConfig holds construction parameters for the engine
type PSOConfig struct {
	PopulationSize int
	VectorLength   int
	NumInformants  int
	UpdateMode     UpdateMode
	// VelocityRange defaults to DefaultVelocityRange when zero.
	VelocityRange framework.Bounds
	// Seed for the engine's random source; 0 seeds from the clock.
	Seed uint64
}

// DefaultPSOConfig returns the configuration used by the dashboard on startup
func DefaultPSOConfig() PSOConfig {
	return PSOConfig{
		PopulationSize: 25,
		VectorLength:   DefaultVectorLength,
		NumInformants:  DefaultNumInformants,
		UpdateMode:     Synchronous,
		VelocityRange:  DefaultVelocityRange,
	}
}

// Validate rejects configurations the engine cannot be built from
func (c PSOConfig) Validate() error {
	if c.PopulationSize < 1 {
		return fmt.Errorf("population size must be at least 1, got %d", c.PopulationSize)
	}
	if c.VectorLength != DefaultVectorLength {
		return fmt.Errorf("vector length must be %d, got %d", DefaultVectorLength, c.VectorLength)
	}
	if c.NumInformants < 0 {
		return fmt.Errorf("number of informants must not be negative, got %d", c.NumInformants)
	}
	switch c.UpdateMode {
	case "", Synchronous, Asynchronous:
	default:
		return fmt.Errorf("unknown update mode %q", c.UpdateMode)
	}
	if c.VelocityRange != (framework.Bounds{}) && c.VelocityRange.L > c.VelocityRange.H {
		return fmt.Errorf("velocity range is inverted: [%g, %g]", c.VelocityRange.L, c.VelocityRange.H)
	}
	return nil
}

// Weights are the coefficients of one Improve call
type Weights struct {
	Current         float64
	Personal        float64
	Social          float64
	Global          float64
	ScaleUpdateStep float64
}

// DefaultWeights returns the dashboard's default slider values
func DefaultWeights() Weights {
	return Weights{
		Current:         0.7,
		Personal:        2.0,
		Social:          0.9,
		Global:          0.0,
		ScaleUpdateStep: 0.7,
	}
}
