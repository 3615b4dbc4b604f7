package pso

import (
	"math"
	"strings"
	"testing"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/pso-dashboard/pkg/api/v1alpha1"
)

func TestValidatePSOArgs(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(args *v1alpha1.PSOArgs)
		errContains []string
	}{
		{
			name:   "defaults",
			mutate: func(args *v1alpha1.PSOArgs) {},
		},
		{
			name:   "alias fitness",
			mutate: func(args *v1alpha1.PSOArgs) { args.Fitness = "MeanSquaredError" },
		},
		{
			name:   "no informants",
			mutate: func(args *v1alpha1.PSOArgs) { args.NumInformants = ptr.To[int32](0) },
		},
		{
			name:        "unknown fitness",
			mutate:      func(args *v1alpha1.PSOArgs) { args.Fitness = "Sphere" },
			errContains: []string{"fitness", "Sphere"},
		},
		{
			name:        "negative population",
			mutate:      func(args *v1alpha1.PSOArgs) { args.PopulationSize = -1 },
			errContains: []string{"populationSize"},
		},
		{
			name:        "three dimensions",
			mutate:      func(args *v1alpha1.PSOArgs) { args.VectorLength = 3 },
			errContains: []string{"vectorLength"},
		},
		{
			name:        "negative informants",
			mutate:      func(args *v1alpha1.PSOArgs) { args.NumInformants = ptr.To[int32](-2) },
			errContains: []string{"numInformants"},
		},
		{
			name: "bad weights",
			mutate: func(args *v1alpha1.PSOArgs) {
				args.Weights = &v1alpha1.WeightConfig{Current: ptr.To(-0.1), PersonalBest: ptr.To(math.NaN()), SocialBest: ptr.To(1.0), GlobalBest: ptr.To(math.Inf(1))}
			},
			errContains: []string{"weights.current", "weights.personalBest", "weights.globalBest"},
		},
		{
			name:        "negative scale",
			mutate:      func(args *v1alpha1.PSOArgs) { args.ScaleUpdateStep = ptr.To(-1.0) },
			errContains: []string{"scaleUpdateStep"},
		},
		{
			name:        "unknown update mode",
			mutate:      func(args *v1alpha1.PSOArgs) { args.UpdateMode = "Parallel" },
			errContains: []string{"updateMode"},
		},
		{
			name:        "negative duration",
			mutate:      func(args *v1alpha1.PSOArgs) { args.EvolveDuration = &metav1.Duration{Duration: -time.Second} },
			errContains: []string{"evolveDuration"},
		},
		{
			name:        "zero tick interval",
			mutate:      func(args *v1alpha1.PSOArgs) { args.TickInterval = &metav1.Duration{} },
			errContains: []string{"tickInterval"},
		},
		{
			name: "multiple errors",
			mutate: func(args *v1alpha1.PSOArgs) {
				args.PopulationSize = -5
				args.VectorLength = 1
			},
			errContains: []string{"populationSize", "vectorLength"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := NewDefaultArgs()
			tc.mutate(args)
			err := ValidatePSOArgs(args)
			if len(tc.errContains) == 0 {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected an error containing %v", tc.errContains)
			}
			for _, want := range tc.errContains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Expected error to contain %q, got %v", want, err)
				}
			}
		})
	}
}
