package provisioning

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Phase results recorded in metrics.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics collects per-run provisioning metrics on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	phaseDuration    *prometheus.HistogramVec
	pollAttempts     *prometheus.CounterVec
	resourcesCreated *prometheus.CounterVec
}

// NewMetrics creates and registers the provisioning metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		phaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "oneliner",
				Subsystem: "provisioning",
				Name:      "phase_duration_seconds",
				Help:      "Duration of provisioning phases in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3.4min
			},
			[]string{"phase", "result"},
		),
		pollAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "oneliner",
				Subsystem: "provisioning",
				Name:      "poll_attempts_total",
				Help:      "Number of readiness checks that found the resource not ready yet",
			},
			[]string{"resource"},
		),
		resourcesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "oneliner",
				Subsystem: "provisioning",
				Name:      "resources_created_total",
				Help:      "Number of cloud resources created by type",
			},
			[]string{"type"},
		),
	}
	m.registry.MustRegister(m.phaseDuration, m.pollAttempts, m.resourcesCreated)
	return m
}

// Registry returns the registry holding the run's metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObservePhase records the duration and result of a phase.
func (m *Metrics) ObservePhase(phase, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase, result).Observe(d.Seconds())
}

// PollAttempt counts a not-ready readiness check.
func (m *Metrics) PollAttempt(resource string) {
	if m == nil {
		return
	}
	m.pollAttempts.WithLabelValues(resource).Inc()
}

// ResourceCreated counts a created resource.
func (m *Metrics) ResourceCreated(resourceType string) {
	if m == nil {
		return
	}
	m.resourcesCreated.WithLabelValues(resourceType).Inc()
}

// WriteToTextfile writes the metrics in the Prometheus text format, for
// pickup by the node exporter textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
