// Package metrics exposes Prometheus counters for the revision trail and
// the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

const namespace = "placement"

// Metrics owns a private registry so several instances (tests, commands)
// never collide on the global one.
type Metrics struct {
	registry       *prometheus.Registry
	revisions      *prometheus.CounterVec
	captureFailure *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		revisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revisions_recorded_total",
			Help:      "Revisions appended to the history trail.",
		}, []string{"model", "operation"}),
		captureFailure: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revision_capture_failures_total",
			Help:      "Failures while capturing or persisting a revision, by stage.",
		}, []string{"model", "stage"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"pattern", "method", "status"}),
	}
}

// RevisionRecorded counts one appended revision.
func (m *Metrics) RevisionRecorded(model string, op domain.Operation) {
	m.revisions.WithLabelValues(model, op.String()).Inc()
}

// CaptureFailed counts one swallowed or returned tracker failure.
func (m *Metrics) CaptureFailed(model, stage string) {
	m.captureFailure.WithLabelValues(model, stage).Inc()
}

// ObserveHTTP records the duration of one served request.
func (m *Metrics) ObserveHTTP(pattern, method string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(pattern, method, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
