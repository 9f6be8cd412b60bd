// Package metrics exports run results in the Prometheus exposition format,
// either over HTTP or as a node-exporter textfile, and snapshots runtime
// memory statistics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/fixpoint/internal/accuracy"
	"github.com/agbru/fixpoint/internal/calibration"
	"github.com/agbru/fixpoint/internal/catalog"
	"github.com/agbru/fixpoint/internal/logging"
)

const namespace = "fixbench"

var opLabels = []string{"op", "width", "tier"}

// Metrics holds a private registry so that several instances, as in tests,
// never collide on registration.
type Metrics struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	maxError    *prometheus.GaugeVec
	throughput  *prometheus.GaugeVec
	mismatches  prometheus.Counter
	handler     http.Handler
	logger      logging.Logger
}

// New registers the fixbench collectors and the Go runtime collectors. A nil
// logger disables request logging.
func New(logger logging.Logger) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Kernel evaluations performed, by operation.",
		}, opLabels),
		maxError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_error",
			Help:      "Maximum error measured by the last accuracy sweep.",
		}, opLabels),
		throughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "throughput_mops",
			Help:      "Best measured throughput in millions of operations per second.",
		}, opLabels),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "golden_mismatches_total",
			Help:      "Golden vectors whose output no longer reproduces.",
		}),
		logger: logger,
	}
	reg.MustRegister(
		m.evaluations,
		m.maxError,
		m.throughput,
		m.mismatches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

func labels(op catalog.Op) prometheus.Labels {
	return prometheus.Labels{"op": op.Name, "width": op.Width.String(), "tier": op.Tier.String()}
}

// ObserveAccuracy records the sample count and maximum error of a sweep.
func (m *Metrics) ObserveAccuracy(r accuracy.Result) {
	l := labels(r.Op)
	m.evaluations.With(l).Add(float64(r.Tested))
	m.maxError.With(l).Set(r.MaxErr)
}

// ObserveBenchmark records a throughput measurement.
func (m *Metrics) ObserveBenchmark(ms calibration.Measurement) {
	l := labels(ms.Op)
	m.evaluations.With(l).Add(float64(ms.Ops()))
	m.throughput.With(l).Set(ms.Mops)
}

// AddGoldenMismatches counts drifted golden vectors.
func (m *Metrics) AddGoldenMismatches(n int) {
	m.mismatches.Add(float64(n))
}

// Registry exposes the underlying registry as a Gatherer.
func (m *Metrics) Registry() prometheus.Gatherer {
	return m.registry
}

// WritePrometheus serves the registry. Only GET and HEAD are allowed.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		if m.logger != nil {
			m.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		}
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	m.handler.ServeHTTP(w, r)
}

// WriteTextfile writes the registry to path in the textfile collector
// format. The write is atomic.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
