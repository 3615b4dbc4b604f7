package pso

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/pso-dashboard/pkg/api/v1alpha1"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/algorithms"
)

func TestDecodeArgs(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		check   func(t *testing.T, args *v1alpha1.PSOArgs)
		wantErr string
	}{
		{
			name: "full",
			data: `
apiVersion: pso.dashboard.io/v1alpha1
kind: PSOArgs
fitness: Himmelblau
populationSize: 40
numInformants: 3
weights:
  current: 0.5
  personalBest: 1.5
  socialBest: 1.2
  globalBest: 0.3
scaleUpdateStep: 0.9
updateMode: Asynchronous
evolveDuration: 2s
tickInterval: 10ms
seed: 17
`,
			check: func(t *testing.T, args *v1alpha1.PSOArgs) {
				if args.Fitness != "Himmelblau" || args.PopulationSize != 40 || *args.NumInformants != 3 {
					t.Errorf("Unexpected args: %+v", args)
				}
				want := v1alpha1.WeightConfig{Current: ptr.To(0.5), PersonalBest: ptr.To(1.5), SocialBest: ptr.To(1.2), GlobalBest: ptr.To(0.3)}
				if diff := cmp.Diff(want, *args.Weights); diff != "" {
					t.Errorf("Unexpected weights (-want, +got):\n%s", diff)
				}
				if args.EvolveDuration.Duration != 2*time.Second || args.TickInterval.Duration != 10*time.Millisecond {
					t.Errorf("Unexpected durations: %v %v", args.EvolveDuration, args.TickInterval)
				}
				if args.UpdateMode != v1alpha1.UpdateModeAsynchronous || args.Seed != 17 {
					t.Errorf("Unexpected mode or seed: %v %v", args.UpdateMode, args.Seed)
				}
			},
		},
		{
			name: "defaults applied",
			data: `fitness: rosenbrock`,
			check: func(t *testing.T, args *v1alpha1.PSOArgs) {
				want := NewDefaultArgs()
				want.Fitness = "rosenbrock"
				if diff := cmp.Diff(want, args); diff != "" {
					t.Errorf("Unexpected args (-want, +got):\n%s", diff)
				}
			},
		},
		{
			name: "partial weights",
			data: "weights:\n  current: 1.5\n",
			check: func(t *testing.T, args *v1alpha1.PSOArgs) {
				want := DefaultWeights()
				want.Current = ptr.To(1.5)
				if diff := cmp.Diff(want, *args.Weights); diff != "" {
					t.Errorf("Unset weights were not defaulted (-want, +got):\n%s", diff)
				}
				if diff := cmp.Diff(algorithms.Weights{Current: 1.5, Personal: 2.0, Social: 0.9, Global: 0, ScaleUpdateStep: 0.7}, EngineWeights(args)); diff != "" {
					t.Errorf("Unexpected engine weights (-want, +got):\n%s", diff)
				}
			},
		},
		{
			name: "explicit zero weight",
			data: "weights:\n  personalBest: 0\n",
			check: func(t *testing.T, args *v1alpha1.PSOArgs) {
				if got := *args.Weights.PersonalBest; got != 0 {
					t.Errorf("Expected an explicit zero to be kept, got %v", got)
				}
				if got := *args.Weights.Current; got != 0.7 {
					t.Errorf("Expected current to be defaulted to 0.7, got %v", got)
				}
			},
		},
		{
			name:    "unknown field",
			data:    `swarmSize: 10`,
			wantErr: "swarmSize",
		},
		{
			name:    "wrong kind",
			data:    "kind: DeschedulerPolicy\n",
			wantErr: "want kind PSOArgs",
		},
		{
			name:    "wrong apiVersion",
			data:    "apiVersion: pso.dashboard.io/v2\nkind: PSOArgs\n",
			wantErr: "want apiVersion",
		},
		{
			name:    "invalid values",
			data:    "populationSize: -3\n",
			wantErr: "populationSize",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args, err := DecodeArgs([]byte(tc.data))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("Expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tc.check(t, args)
		})
	}
}

func TestEncodeArgsRoundTrip(t *testing.T) {
	args := NewDefaultArgs()
	args.Fitness = "Ackley"
	args.Seed = 5

	data, err := EncodeArgs(args)
	if err != nil {
		t.Fatalf("EncodeArgs failed: %v", err)
	}
	if !strings.Contains(string(data), "kind: PSOArgs") {
		t.Errorf("Expected encoded args to carry the kind, got:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "args.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	loaded, err := LoadArgs(path)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if diff := cmp.Diff(args, loaded); diff != "" {
		t.Errorf("Round trip changed args (-want, +got):\n%s", diff)
	}
}

func TestLoadArgsMissingFile(t *testing.T) {
	if _, err := LoadArgs(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestEngineConfig(t *testing.T) {
	args := NewDefaultArgs()
	args.UpdateMode = v1alpha1.UpdateModeAsynchronous

	want := algorithms.PSOConfig{
		PopulationSize: 25,
		VectorLength:   2,
		NumInformants:  6,
		UpdateMode:     algorithms.Asynchronous,
		VelocityRange:  algorithms.DefaultVelocityRange,
		Seed:           11,
	}
	if diff := cmp.Diff(want, EngineConfig(args, 11)); diff != "" {
		t.Errorf("Unexpected engine config (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(algorithms.DefaultWeights(), EngineWeights(args)); diff != "" {
		t.Errorf("Unexpected engine weights (-want, +got):\n%s", diff)
	}
}
