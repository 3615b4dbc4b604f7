package util_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/algorithms"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/benchmarks"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/landscape"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/util"
)

func newSnapshot(t *testing.T) (algorithms.Snapshot, []float64) {
	t.Helper()
	config := algorithms.DefaultPSOConfig()
	config.Seed = 3
	pso, err := algorithms.NewPSO(config, benchmarks.NewHimmelblau())
	if err != nil {
		t.Fatalf("NewPSO failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		pso.Improve(algorithms.DefaultWeights())
	}
	return pso.Snapshot(), pso.History()
}

func TestRenderResults(t *testing.T) {
	snap, history := newSnapshot(t)
	f := benchmarks.NewHimmelblau()

	var buf bytes.Buffer
	if err := util.RenderResults(&buf, snap, f, landscape.Compute(f, 20), history); err != nil {
		t.Fatalf("RenderResults failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Swarm on Himmelblau", "Himmelblau Landscape", "Particles", "Minima", "Current Fittest"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRenderResultsWithoutLandscape(t *testing.T) {
	snap, _ := newSnapshot(t)
	var buf bytes.Buffer
	if err := util.RenderResults(&buf, snap, benchmarks.NewHimmelblau(), nil, nil); err != nil {
		t.Fatalf("RenderResults failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("expected a rendered page")
	}
}

func TestRenderResultsEmptySwarm(t *testing.T) {
	var buf bytes.Buffer
	if err := util.RenderResults(&buf, algorithms.Snapshot{}, benchmarks.NewAckley(), nil, nil); err == nil {
		t.Errorf("expected an error for an empty swarm")
	}
}

func TestPlotResults(t *testing.T) {
	snap, history := newSnapshot(t)
	out := filepath.Join(t.TempDir(), "himmelblau.html")

	if err := util.PlotResults(snap, benchmarks.NewHimmelblau(), nil, history, out); err != nil {
		t.Fatalf("PlotResults failed: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", out, err)
	}
	if info.Size() == 0 {
		t.Errorf("expected a non-empty report")
	}
}
