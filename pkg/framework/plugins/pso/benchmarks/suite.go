package benchmarks

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/algorithms"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/landscape"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/util"
)

// TestSuite runs the swarm on a set of landscapes
type TestSuite struct {
	problems   []framework.FitnessFunction
	config     algorithms.PSOConfig
	weights    algorithms.Weights
	iterations int
}

// Result summarizes one landscape run
type Result struct {
	Fitness           string
	Iterations        int
	BestValue         float64
	BestPosition      framework.Vector
	DistanceToMinimum float64
	History           []float64
}

// NewTestSuite creates a new benchmark test suite
func NewTestSuite(config algorithms.PSOConfig, weights algorithms.Weights, iterations int) *TestSuite {
	return &TestSuite{
		config:     config,
		weights:    weights,
		iterations: iterations,
	}
}

// AddProblem adds a landscape to the test suite
func (ts *TestSuite) AddProblem(f framework.FitnessFunction) {
	ts.problems = append(ts.problems, f)
}

// AddStandardProblems adds every landscape of the dashboard
func (ts *TestSuite) AddStandardProblems() {
	for _, f := range All() {
		ts.AddProblem(f)
	}
}

// Run executes the test suite. Landscapes run in parallel, one engine each.
// When outputDir is not empty an HTML report is written per landscape.
func (ts *TestSuite) Run(ctx context.Context, outputDir string) ([]Result, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	logger := klog.FromContext(ctx)

	results := make([]Result, len(ts.problems))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, problem := range ts.problems {
		g.Go(func() error {
			logger.Info("Running PSO", "fitness", problem.Name(), "iterations", ts.iterations)

			res, err := ts.runProblem(ctx, problem)
			if err != nil {
				return fmt.Errorf("%s: %w", problem.Name(), err)
			}
			results[i] = res.result

			if outputDir != "" {
				outputFile := filepath.Join(outputDir, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithms.Name))
				grid := landscape.Compute(problem, landscape.DefaultResolution)
				if err := util.PlotResults(res.snapshot, problem, grid, res.result.History, outputFile); err != nil {
					logger.Error(err, "Failed to plot results", "fitness", problem.Name())
				}
			}

			logger.Info("PSO finished",
				"fitness", problem.Name(),
				"bestValue", res.result.BestValue,
				"bestPosition", res.result.BestPosition,
				"distanceToMinimum", res.result.DistanceToMinimum)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type problemRun struct {
	result   Result
	snapshot algorithms.Snapshot
}

func (ts *TestSuite) runProblem(ctx context.Context, problem framework.FitnessFunction) (problemRun, error) {
	pso, err := algorithms.NewPSO(ts.config, problem)
	if err != nil {
		return problemRun{}, err
	}
	for it := 0; it < ts.iterations; it++ {
		if err := ctx.Err(); err != nil {
			return problemRun{}, err
		}
		pso.Improve(ts.weights)
	}

	snap := pso.Snapshot()
	return problemRun{
		result: Result{
			Fitness:           problem.Name(),
			Iterations:        pso.Iteration(),
			BestValue:         snap.GlobalBestValue,
			BestPosition:      snap.GlobalBestPosition,
			DistanceToMinimum: DistanceToMinimum(problem, snap.GlobalBestPosition),
			History:           pso.History(),
		},
		snapshot: snap,
	}, nil
}

func euclideanDistance(a, b framework.Vector) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
