package util

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/algorithms"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/framework"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/landscape"
)

// PlotResults writes an HTML page with the swarm positions against the known
// minima, the landscape heatmap (when grid is not nil) and the convergence of
// the global best over iterations.
func PlotResults(snapshot algorithms.Snapshot, fitness framework.FitnessFunction, grid *landscape.Grid, history []float64, outputPath ...string) error {
	filename := fmt.Sprintf("%s_%s_results.html", fitness.Name(), algorithms.Name)
	if len(outputPath) > 0 && outputPath[0] != "" {
		filename = outputPath[0]
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return RenderResults(f, snapshot, fitness, grid, history)
}

// RenderResults is PlotResults writing to w
func RenderResults(w io.Writer, snapshot algorithms.Snapshot, fitness framework.FitnessFunction, grid *landscape.Grid, history []float64) error {
	if len(snapshot.Particles) == 0 {
		return fmt.Errorf("swarm is empty for %s", fitness.Name())
	}
	if len(snapshot.Particles[0].Position) != 2 {
		return fmt.Errorf("can only plot 2D swarms for %s", fitness.Name())
	}

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s on %s", algorithms.Name, fitness.Name())
	page.AddCharts(swarmChart(snapshot, fitness))
	if grid != nil {
		page.AddCharts(landscapeChart(grid))
	}
	if len(history) > 0 {
		page.AddCharts(convergenceChart(history, fitness))
	}
	return page.Render(w)
}

func swarmChart(snapshot algorithms.Snapshot, fitness framework.FitnessFunction) *charts.Scatter {
	d := fitness.Domain()

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s Swarm on %s", algorithms.Name, fitness.Name()),
			Subtitle: fmt.Sprintf("iteration %d, best %.6g", snapshot.Iteration, snapshot.GlobalBestValue),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x",
			Min:  d.MinX,
			Max:  d.MaxX,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "y",
			Min:  d.MinY,
			Max:  d.MaxY,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	particles := make([]opts.ScatterData, len(snapshot.Particles))
	for i, p := range snapshot.Particles {
		_, angle := p.Heading()
		particles[i] = opts.ScatterData{
			Name:         fmt.Sprintf("particle %d", p.ID),
			Value:        []float64{p.Position[0], p.Position[1]},
			Symbol:       "arrow",
			SymbolSize:   8,
			SymbolRotate: arrowRotation(angle),
		}
	}

	minima := make([]opts.ScatterData, len(fitness.Minima()))
	for i, m := range fitness.Minima() {
		minima[i] = opts.ScatterData{
			Value:      []float64{m[0], m[1]},
			Symbol:     "triangle",
			SymbolSize: 14,
		}
	}

	fittest := []opts.ScatterData{{
		Name:       fmt.Sprintf("particle %d", snapshot.GlobalFittestID),
		Value:      []float64{snapshot.GlobalBestPosition[0], snapshot.GlobalBestPosition[1]},
		Symbol:     "circle",
		SymbolSize: 12,
	}}

	scatter.AddSeries("Particles", particles).
		AddSeries("Minima", minima).
		AddSeries("Current Fittest", fittest).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)
	return scatter
}

// arrowRotation converts a heading angle (radians, counterclockwise from +x)
// into the rotation of echarts' arrow symbol, which points up when unrotated.
func arrowRotation(angle float64) int {
	return int(math.Round(angle*180/math.Pi - 90))
}

func landscapeChart(grid *landscape.Grid) *charts.HeatMap {
	xs := make([]string, len(grid.X))
	for i, x := range grid.X {
		xs[i] = fmt.Sprintf("%.2f", x)
	}
	ys := make([]string, len(grid.Y))
	for j, y := range grid.Y {
		ys[j] = fmt.Sprintf("%.2f", y)
	}

	data := make([]opts.HeatMapData, 0, len(grid.X)*len(grid.Y))
	for j, row := range grid.Z {
		for i, z := range row {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, z}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Landscape", grid.Fitness),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: ys,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(grid.Min),
			Max:        float32(grid.Max),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#f0f0f0", "#e0e0e0", "#5470c6"},
			},
		}),
	)
	hm.SetXAxis(xs).AddSeries("f(x, y)", data)
	return hm
}

func convergenceChart(history []float64, fitness framework.FitnessFunction) *charts.Line {
	xs := make([]int, len(history))
	values := make([]opts.LineData, len(history))
	for i, v := range history {
		xs[i] = i
		values[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Global Best on %s", fitness.Name()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "f"}),
	)
	line.SetXAxis(xs).AddSeries("global best", values)
	return line
}
