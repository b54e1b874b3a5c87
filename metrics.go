package folio

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the application's own collectors. HTTP request metrics come
// from the echoprometheus middleware on the same registry.
type Metrics struct {
	FetchDuration    *prometheus.HistogramVec
	CacheResults     *prometheus.CounterVec
	FragmentStates   *prometheus.CounterVec
	TestimonialSteps *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "folio",
				Name:      "content_fetch_duration_seconds",
				Help:      "Content store query duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
			},
			[]string{"query", "outcome"},
		),
		CacheResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "content_cache_results_total",
				Help:      "Content cache lookups by result",
			},
			[]string{"result"}, // hit, miss, error
		),
		FragmentStates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "fragment_states_total",
				Help:      "Settled fragment renders by fragment and state",
			},
			[]string{"fragment", "state"},
		),
		TestimonialSteps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "testimonial_steps_total",
				Help:      "Testimonial carousel steps by direction",
			},
			[]string{"step"},
		),
	}
	reg.MustRegister(m.FetchDuration, m.CacheResults, m.FragmentStates, m.TestimonialSteps)
	return m
}

// ObserveFetch records one content store query.
func (m *Metrics) ObserveFetch(query string, err error, d time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.FetchDuration.WithLabelValues(query, outcome).Observe(d.Seconds())
}
