package benchmarks

import (
	"math"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

// Rastrigin is highly multimodal with a regular grid of local minima
type Rastrigin struct{}

func NewRastrigin() *Rastrigin {
	return &Rastrigin{}
}

func (p *Rastrigin) Name() string {
	return "Rastrigin"
}

func (p *Rastrigin) Evaluate(v framework.Vector) float64 {
	sum := 10.0 * float64(len(v))
	for _, x := range v {
		sum += x*x - 10.0*math.Cos(2*math.Pi*x)
	}
	return sum
}

func (p *Rastrigin) Domain() framework.Domain {
	return framework.Domain{MinX: -5.12, MinY: -5.12, MaxX: 5.12, MaxY: 5.12}
}

func (p *Rastrigin) Minima() []framework.Vector {
	return []framework.Vector{{0, 0}}
}
