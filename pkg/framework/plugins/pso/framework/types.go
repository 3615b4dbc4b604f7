package framework

import "fmt"

// Vector is a point or displacement in the search space
type Vector []float64

// Clone returns an independent copy of v
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Bounds is an inclusive [L, H] interval on one axis
type Bounds struct {
	L, H float64
}

// Width returns H - L
func (b Bounds) Width() float64 {
	return b.H - b.L
}

// Contains reports whether x lies within the interval
func (b Bounds) Contains(x float64) bool {
	return x >= b.L && x <= b.H
}

// Domain contains the rectangular search domain of a two dimensional landscape
type Domain struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Axes returns the per-axis bounds of the domain, x first
func (d Domain) Axes() []Bounds {
	return []Bounds{
		{L: d.MinX, H: d.MaxX},
		{L: d.MinY, H: d.MaxY},
	}
}

// Contains reports whether the point lies inside the domain (bounds inclusive)
func (d Domain) Contains(v Vector) bool {
	if len(v) != 2 {
		return false
	}
	axes := d.Axes()
	return axes[0].Contains(v[0]) && axes[1].Contains(v[1])
}

func (d Domain) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", d.MinX, d.MaxX, d.MinY, d.MaxY)
}

// FitnessFunction is a landscape that the swarm minimizes.
// Evaluate is pure and defined on all of R^2, Domain bounds the region
// used for initialization and display, and Minima lists the known
// global minimum locations.
type FitnessFunction interface {
	Name() string
	Evaluate(v Vector) float64
	Domain() Domain
	Minima() []Vector
}
