package benchmarks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/algorithms"
)

func newTestSuite(iterations int) *TestSuite {
	config := algorithms.DefaultPSOConfig()
	config.PopulationSize = 15
	config.NumInformants = 3
	config.Seed = 7
	return NewTestSuite(config, algorithms.DefaultWeights(), iterations)
}

func TestSuiteRun(t *testing.T) {
	ts := newTestSuite(50)
	ts.AddStandardProblems()
	outputDir := filepath.Join(t.TempDir(), "results")

	results, err := ts.Run(context.Background(), outputDir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != len(All()) {
		t.Fatalf("expected %d results, got %d", len(All()), len(results))
	}

	for i, f := range All() {
		res := results[i]
		if res.Fitness != f.Name() {
			t.Errorf("result %d: expected %s, got %s", i, f.Name(), res.Fitness)
		}
		if res.Iterations != 50 {
			t.Errorf("%s: expected 50 iterations, got %d", res.Fitness, res.Iterations)
		}
		if len(res.History) != 51 {
			t.Errorf("%s: expected 51 history entries, got %d", res.Fitness, len(res.History))
		}
		if res.BestValue != res.History[len(res.History)-1] {
			t.Errorf("%s: best value %v does not match last history entry %v", res.Fitness, res.BestValue, res.History[len(res.History)-1])
		}
		if res.BestValue > res.History[0] {
			t.Errorf("%s: best value %v worse than initial %v", res.Fitness, res.BestValue, res.History[0])
		}
		if res.DistanceToMinimum < 0 {
			t.Errorf("%s: negative distance to minimum %v", res.Fitness, res.DistanceToMinimum)
		}
		t.Logf("%s: best=%.6f at %v (distance %.4f)", res.Fitness, res.BestValue, res.BestPosition, res.DistanceToMinimum)

		report := filepath.Join(outputDir, f.Name()+"_PSO_results.html")
		if _, err := os.Stat(report); err != nil {
			t.Errorf("%s: expected report %s: %v", res.Fitness, report, err)
		}
	}
}

func TestSuiteRunCancelled(t *testing.T) {
	ts := newTestSuite(1000)
	ts.AddProblem(NewRastrigin())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ts.Run(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSuiteRunInvalidConfig(t *testing.T) {
	config := algorithms.DefaultPSOConfig()
	config.PopulationSize = 0
	ts := NewTestSuite(config, algorithms.DefaultWeights(), 10)
	ts.AddProblem(NewAckley())

	if _, err := ts.Run(context.Background(), ""); err == nil {
		t.Errorf("expected an error for an empty swarm")
	}
}
