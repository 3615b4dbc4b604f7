package benchmarks

import (
	"math"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

// Ackley has a nearly flat outer region and a deep hole at the origin
type Ackley struct{}

func NewAckley() *Ackley {
	return &Ackley{}
}

func (p *Ackley) Name() string {
	return "Ackley"
}

func (p *Ackley) Evaluate(v framework.Vector) float64 {
	x, y := v[0], v[1]
	return -20*math.Exp(-0.2*math.Sqrt(0.5*(x*x+y*y))) -
		math.Exp(0.5*(math.Cos(2*math.Pi*x)+math.Cos(2*math.Pi*y))) +
		20 + math.E
}

func (p *Ackley) Domain() framework.Domain {
	return framework.Domain{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}
}

func (p *Ackley) Minima() []framework.Vector {
	return []framework.Vector{{0, 0}}
}
