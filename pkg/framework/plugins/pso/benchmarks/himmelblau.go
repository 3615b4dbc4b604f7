package benchmarks

import (
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

// Himmelblau has four identical global minima
type Himmelblau struct{}

func NewHimmelblau() *Himmelblau {
	return &Himmelblau{}
}

func (p *Himmelblau) Name() string {
	return "Himmelblau"
}

func (p *Himmelblau) Evaluate(v framework.Vector) float64 {
	x, y := v[0], v[1]
	a := x*x + y - 11
	b := x + y*y - 7
	return a*a + b*b
}

func (p *Himmelblau) Domain() framework.Domain {
	return framework.Domain{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}
}

func (p *Himmelblau) Minima() []framework.Vector {
	return []framework.Vector{
		{3.0, 2.0},
		{-2.805118, 3.131312},
		{-3.779310, -3.283186},
		{3.584428, -1.848126},
	}
}
