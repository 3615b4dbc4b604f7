package benchmarks

import (
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

// Rosenbrock has its minimum inside a long, flat, curved valley.
// Finding the valley is easy, converging along it is not.
type Rosenbrock struct{}

func NewRosenbrock() *Rosenbrock {
	return &Rosenbrock{}
}

func (p *Rosenbrock) Name() string {
	return "Rosenbrock"
}

func (p *Rosenbrock) Evaluate(v framework.Vector) float64 {
	sum := 0.0
	for i := 0; i < len(v)-1; i++ {
		a := v[i+1] - v[i]*v[i]
		b := 1 - v[i]
		sum += 100*a*a + b*b
	}
	return sum
}

func (p *Rosenbrock) Domain() framework.Domain {
	return framework.Domain{MinX: -2, MinY: -1, MaxX: 2, MaxY: 3}
}

func (p *Rosenbrock) Minima() []framework.Vector {
	return []framework.Vector{{1, 1}}
}
