package benchmarks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
)

// All returns one instance of every landscape, in display order
func All() []framework.FitnessFunction {
	return []framework.FitnessFunction{
		NewParaboloid(),
		NewRastrigin(),
		NewAckley(),
		NewRosenbrock(),
		NewHimmelblau(),
	}
}

// aliases maps alternative names onto display names
var aliases = map[string]string{
	"meansquarederror": "paraboloid",
	"mse":              "paraboloid",
}

// ByName returns the landscape with the given display name or alias.
// Matching is case insensitive.
func ByName(name string) (framework.FitnessFunction, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	for _, f := range All() {
		if strings.ToLower(f.Name()) == key {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown fitness function %q, expected one of %s", name, strings.Join(Names(), ", "))
}

// Names returns the display names of all landscapes, sorted
func Names() []string {
	funcs := All()
	names := make([]string, len(funcs))
	for i, f := range funcs {
		names[i] = f.Name()
	}
	sort.Strings(names)
	return names
}

// DistanceToMinimum returns the Euclidean distance from v to the nearest known minimum of f
func DistanceToMinimum(f framework.FitnessFunction, v framework.Vector) float64 {
	best := -1.0
	for _, m := range f.Minima() {
		dist := euclideanDistance(m, v)
		if best < 0 || dist < best {
			best = dist
		}
	}
	return best
}
