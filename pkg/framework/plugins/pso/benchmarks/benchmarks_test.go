package benchmarks

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

func TestDomains(t *testing.T) {
	for _, f := range All() {
		d := f.Domain()
		if !(d.MinX < d.MaxX) || !(d.MinY < d.MaxY) {
			t.Errorf("%s: degenerate domain %s", f.Name(), d)
		}
		for _, m := range f.Minima() {
			if !d.Contains(m) {
				t.Errorf("%s: minimum %v outside domain %s", f.Name(), m, d)
			}
		}
	}
}

func TestMinima(t *testing.T) {
	for _, f := range All() {
		t.Run(f.Name(), func(t *testing.T) {
			minima := f.Minima()
			if len(minima) == 0 {
				t.Fatalf("expected at least one known minimum")
			}
			for _, m := range minima {
				if got := f.Evaluate(m); math.Abs(got) > 1e-6 {
					t.Errorf("f(%v) = %v, want ~0", m, got)
				}
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		fitness framework.FitnessFunction
		point   framework.Vector
		want    float64
	}{
		{"ParaboloidOrigin", NewParaboloid(), framework.Vector{0, 0}, 0},
		{"ParaboloidMean", NewParaboloid(), framework.Vector{1, 3}, 5},
		{"RastriginOrigin", NewRastrigin(), framework.Vector{0, 0}, 0},
		{"RastriginIntegerPoint", NewRastrigin(), framework.Vector{1, 0}, 1},
		{"AckleyOrigin", NewAckley(), framework.Vector{0, 0}, 0},
		{"RosenbrockMinimum", NewRosenbrock(), framework.Vector{1, 1}, 0},
		{"RosenbrockOrigin", NewRosenbrock(), framework.Vector{0, 0}, 1},
		{"HimmelblauMinimum", NewHimmelblau(), framework.Vector{3, 2}, 0},
		{"HimmelblauOrigin", NewHimmelblau(), framework.Vector{0, 0}, 170},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fitness.Evaluate(tc.point); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Evaluate(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestEvaluateOutsideDomain(t *testing.T) {
	for _, f := range All() {
		v := f.Evaluate(framework.Vector{100, -100})
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s: expected a finite value outside the domain, got %v", f.Name(), v)
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "Paraboloid", want: "Paraboloid"},
		{name: "rastrigin", want: "Rastrigin"},
		{name: "  ACKLEY ", want: "Ackley"},
		{name: "Rosenbrock", want: "Rosenbrock"},
		{name: "Himmelblau", want: "Himmelblau"},
		{name: "MeanSquaredError", want: "Paraboloid"},
		{name: "mse", want: "Paraboloid"},
		{name: "Sphere", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := ByName(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr {
				return
			}
			if f.Name() != tc.want {
				t.Errorf("ByName(%q) = %s, want %s", tc.name, f.Name(), tc.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	want := []string{"Ackley", "Himmelblau", "Paraboloid", "Rastrigin", "Rosenbrock"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestDistanceToMinimum(t *testing.T) {
	if got := DistanceToMinimum(NewParaboloid(), framework.Vector{3, 4}); got != 5 {
		t.Errorf("expected distance 5, got %v", got)
	}
	// nearest of the four minima
	if got := DistanceToMinimum(NewHimmelblau(), framework.Vector{3, 2.5}); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected distance 0.5, got %v", got)
	}
}
