package benchmarks

import (
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

// Paraboloid is the mean squared error of the position against the origin.
// It is convex with a single minimum, the easiest landscape in the set.
type Paraboloid struct{}

func NewParaboloid() *Paraboloid {
	return &Paraboloid{}
}

func (p *Paraboloid) Name() string {
	return "Paraboloid"
}

func (p *Paraboloid) Evaluate(v framework.Vector) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return sum / float64(len(v))
}

func (p *Paraboloid) Domain() framework.Domain {
	return framework.Domain{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}
}

func (p *Paraboloid) Minima() []framework.Vector {
	return []framework.Vector{{0, 0}}
}
