// Package metrics exposes Prometheus collectors for attendance runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mayobojhosue-coder/app-bloom/internal/attendance"
)

// Entry outcomes.
const (
	OutcomeExact     = "exact"
	OutcomeFuzzy     = "fuzzy"
	OutcomeUnmatched = "unmatched"
)

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	reconciliations prometheus.Counter
	entries         *prometheus.CounterVec
	people          *prometheus.GaugeVec
	duration        prometheus.Histogram
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reconciliations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bloom",
			Name:      "reconciliations_total",
			Help:      "Number of attendance lists reconciled.",
		}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bloom",
			Name:      "entries_total",
			Help:      "Entries processed, by how they were resolved. Repeated mentions count each time.",
		}, []string{"outcome"}),
		people: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bloom",
			Name:      "attendance_people",
			Help:      "Head count of the latest reconciliation per roster and status.",
		}, []string{"category", "status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bloom",
			Name:      "reconcile_duration_seconds",
			Help:      "Time spent resolving and partitioning one list.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	m.registry.MustRegister(
		m.reconciliations,
		m.entries,
		m.people,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records one reconciliation result and how long it took. Entry
// outcomes are counted per mention, so exact + fuzzy + unmatched equals the
// number of entries in the list.
func (m *Metrics) Observe(result *attendance.Result, elapsed time.Duration) {
	m.reconciliations.Inc()
	m.duration.Observe(elapsed.Seconds())

	for _, match := range result.Matches {
		if match.Exact {
			m.entries.WithLabelValues(OutcomeExact).Inc()
		} else {
			m.entries.WithLabelValues(OutcomeFuzzy).Inc()
		}
	}
	m.entries.WithLabelValues(OutcomeUnmatched).Add(float64(result.Misses))

	for _, p := range result.Partitions {
		t := p.Totals()
		m.people.WithLabelValues(string(p.Category), "present").Set(float64(t.Present))
		m.people.WithLabelValues(string(p.Category), "absent").Set(float64(t.Absent))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
