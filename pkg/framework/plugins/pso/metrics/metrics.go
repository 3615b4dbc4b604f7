// Package metrics exposes swarm progress as Prometheus collectors
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pso"

// Recorder holds the collectors for one session. All series are labelled
// with the fitness function name.
type Recorder struct {
	Iterations      *prometheus.CounterVec
	Repopulations   *prometheus.CounterVec
	GlobalBest      *prometheus.GaugeVec
	SwarmSize       *prometheus.GaugeVec
	ImproveDuration *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		Iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Number of swarm update steps performed.",
		}, []string{"fitness"}),
		Repopulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repopulations_total",
			Help:      "Number of times a new swarm was sampled.",
		}, []string{"fitness"}),
		GlobalBest: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "global_best_value",
			Help:      "Lowest fitness value found by the swarm.",
		}, []string{"fitness"}),
		SwarmSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "swarm_size",
			Help:      "Number of particles in the swarm.",
		}, []string{"fitness"}),
		ImproveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "improve_duration_seconds",
			Help:      "Wall time of one swarm update step.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"fitness"}),
	}
	for _, c := range []prometheus.Collector{r.Iterations, r.Repopulations, r.GlobalBest, r.SwarmSize, r.ImproveDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObservePopulation records a freshly sampled swarm
func (r *Recorder) ObservePopulation(fitness string, size int, globalBest float64) {
	if r == nil {
		return
	}
	r.Repopulations.WithLabelValues(fitness).Inc()
	r.SwarmSize.WithLabelValues(fitness).Set(float64(size))
	r.GlobalBest.WithLabelValues(fitness).Set(globalBest)
}

// ObserveImprove records one update step
func (r *Recorder) ObserveImprove(fitness string, globalBest float64, took time.Duration) {
	if r == nil {
		return
	}
	r.Iterations.WithLabelValues(fitness).Inc()
	r.GlobalBest.WithLabelValues(fitness).Set(globalBest)
	r.ImproveDuration.WithLabelValues(fitness).Observe(took.Seconds())
}
