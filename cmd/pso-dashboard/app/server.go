/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package app implements the pso-dashboard command line
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	logsapi "k8s.io/component-base/logs/api/v1"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/pso-dashboard/pkg/api/v1alpha1"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/algorithms"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/benchmarks"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/landscape"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/metrics"
	"github.com/mihai-snyk/pso-dashboard/pkg/framework/plugins/pso/util"
	"github.com/mihai-snyk/pso-dashboard/pkg/tracing"
)

// NewPSODashboardCommand creates the root command
func NewPSODashboardCommand() *cobra.Command {
	o := NewOptions()
	cmd := &cobra.Command{
		Use:   "pso-dashboard",
		Short: "Particle swarm optimization over benchmark landscapes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logsapi.ValidateAndApply(o.Logging, nil)
		},
		SilenceUsage: true,
	}
	logsapi.AddFlags(o.Logging, cmd.PersistentFlags())

	cmd.AddCommand(
		newRunCommand(o),
		newBenchCommand(o),
		newListCommand(),
	)
	return cmd
}

type runOptions struct {
	iterations  int
	report      string
	resolution  int
	metricsFile string
	tracing     tracing.Config
}

func newRunCommand(o *Options) *cobra.Command {
	ro := &runOptions{
		resolution: landscape.DefaultResolution,
		tracing: tracing.Config{
			ServiceName: tracing.DefaultServiceName,
			SampleRate:  tracing.DefaultSampleRate,
		},
	}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve one swarm and report the best solution found",
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := o.Args(cmd.Flags())
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return runSession(klog.NewContext(ctx, klog.Background()), ro, args, cmd.OutOrStdout())
		},
	}
	o.AddFlags(cmd.Flags())
	cmd.Flags().IntVar(&ro.iterations, "iterations", ro.iterations, "Run exactly this many steps instead of evolving for --evolve-duration.")
	cmd.Flags().StringVar(&ro.report, "report", ro.report, "Write an HTML report of the final swarm to this file.")
	cmd.Flags().IntVar(&ro.resolution, "landscape-resolution", ro.resolution, "Grid resolution of the landscape in the report.")
	cmd.Flags().StringVar(&ro.metricsFile, "metrics-file", ro.metricsFile, "Write Prometheus metrics in text format to this file.")
	cmd.Flags().StringVar(&ro.tracing.Endpoint, "otel-collector-endpoint", ro.tracing.Endpoint, "OTLP gRPC endpoint receiving a span per swarm step. Tracing is disabled when empty.")
	cmd.Flags().StringVar(&ro.tracing.CACert, "otel-trace-ca-cert", ro.tracing.CACert, "CA certificate of the collector. The connection is insecure when empty.")
	cmd.Flags().StringVar(&ro.tracing.ServiceName, "otel-service-name", ro.tracing.ServiceName, "Service name attached to exported spans.")
	cmd.Flags().Float64Var(&ro.tracing.SampleRate, "otel-sample-rate", ro.tracing.SampleRate, "Fraction of swarm steps to trace.")
	return cmd
}

// runSession evolves a single session and prints the result to out
func runSession(ctx context.Context, ro *runOptions, args *v1alpha1.PSOArgs, out io.Writer) error {
	logger := klog.FromContext(ctx)

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}
	tp, err := tracing.NewProvider(ctx, ro.tracing)
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error(err, "Failed to shut down tracing")
		}
	}()

	session, err := pso.New(ctx, args, pso.WithRecorder(recorder), pso.WithTracerProvider(tp))
	if err != nil {
		return err
	}

	observer := func(snap algorithms.Snapshot) {
		logger.V(2).Info("Step", "iteration", snap.Iteration, "globalBest", snap.GlobalBestValue)
	}
	if ro.iterations > 0 {
		for i := 0; i < ro.iterations; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			observer(session.NextGeneration(ctx))
		}
	} else if _, err := session.Begin(ctx, observer); err != nil {
		return err
	}

	snap := session.Snapshot()
	fmt.Fprintf(out, "fitness:     %s\n", snap.Fitness)
	fmt.Fprintf(out, "iterations:  %d\n", snap.Iteration)
	fmt.Fprintf(out, "best value:  %.8g\n", snap.GlobalBestValue)
	fmt.Fprintf(out, "best point:  %.6f\n", []float64(snap.GlobalBestPosition))
	fmt.Fprintf(out, "to minimum:  %.6g\n", benchmarks.DistanceToMinimum(session.Fitness(), snap.GlobalBestPosition))

	if ro.report != "" {
		grid := session.Landscape(ro.resolution)
		if err := util.PlotResults(snap, session.Fitness(), grid, session.History(), ro.report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Report written", "path", ro.report)
	}
	if ro.metricsFile != "" {
		if err := writeMetrics(reg, ro.metricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

func writeMetrics(g prometheus.Gatherer, path string) (err error) {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return writeMetricFamilies(f, families)
}

func writeMetricFamilies(w io.Writer, families []*dto.MetricFamily) error {
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func newBenchCommand(o *Options) *cobra.Command {
	var (
		iterations = 200
		outputDir  string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the swarm on every landscape and compare against the known minima",
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := o.Args(cmd.Flags())
			if err != nil {
				return err
			}
			ctx := klog.NewContext(cmd.Context(), klog.Background())

			config := pso.EngineConfig(args, args.Seed)
			weights := pso.EngineWeights(args)

			suite := benchmarks.NewTestSuite(config, weights, iterations)
			suite.AddStandardProblems()
			results, err := suite.Run(ctx, outputDir)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FITNESS\tBEST VALUE\tBEST POINT\tTO MINIMUM")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%.6g\t%.4f\t%.4g\n", r.Fitness, r.BestValue, []float64(r.BestPosition), r.DistanceToMinimum)
			}
			return w.Flush()
		},
	}
	o.AddFlags(cmd.Flags())
	cmd.Flags().IntVar(&iterations, "iterations", iterations, "Steps per landscape.")
	cmd.Flags().StringVar(&outputDir, "output-dir", outputDir, "Write an HTML report per landscape into this directory.")
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available fitness functions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDOMAIN\tMINIMA")
			for _, f := range benchmarks.All() {
				fmt.Fprintf(w, "%s\t%s\t%v\n", f.Name(), f.Domain(), f.Minima())
			}
			return w.Flush()
		},
	}
}
