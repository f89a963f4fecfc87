// Package metrics holds the Prometheus metrics of the data-collection engine.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks collection creation, slot materialization and answer submission.
type Metrics struct {
	CollectionsCreated  prometheus.Counter
	SlotsMaterialized   *prometheus.CounterVec
	AnswersSubmitted    prometheus.Counter
	MaterializeDuration prometheus.Histogram
	HTTPDuration        *prometheus.HistogramVec
}

// New creates a Metrics instance registered with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CollectionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "datacollect_collections_created_total",
			Help: "Total number of collections created",
		}),
		SlotsMaterialized: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "datacollect_slots_materialized_total",
			Help: "Total number of answer slots created, by origin",
		}, []string{"origin"}),
		AnswersSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "datacollect_answers_submitted_total",
			Help: "Total number of slot answers written",
		}),
		MaterializeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "datacollect_materialize_duration_seconds",
			Help:    "Duration of slot materialization for one collection",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "datacollect_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route pattern and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrementCollectionsCreated records a successful collection creation.
func (m *Metrics) IncrementCollectionsCreated() {
	m.CollectionsCreated.Inc()
}

// AddSlotsCreated records n new slots of the given origin.
func (m *Metrics) AddSlotsCreated(origin string, n int) {
	m.SlotsMaterialized.WithLabelValues(origin).Add(float64(n))
}

// AddAnswersSubmitted records n written answers.
func (m *Metrics) AddAnswersSubmitted(n int) {
	m.AnswersSubmitted.Add(float64(n))
}

// ObserveMaterialize records the duration of a materialization.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveMaterialize(start time.Time) {
	m.MaterializeDuration.Observe(time.Since(start).Seconds())
}

// ObserveHTTPRequest records one served HTTP request.
// route must be the router pattern, not the raw path, to keep cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	m.HTTPDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
