// Package metrics exposes Prometheus counters for the submission pipelines
// and the HTTP layer. All methods are safe on a nil *Metrics so callers and
// tests can skip instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "maisonweb"

// Pipeline names used as label values.
const (
	PipelineFeedback       = "feedback"
	PipelineProjectRequest = "project_request"
)

type Metrics struct {
	registry *prometheus.Registry

	Submissions        *prometheus.CounterVec
	VerificationChecks *prometheus.CounterVec
	NotificationsSent  *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
}

// New registers every collector on a private registry, along with the
// standard Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Submissions handled per pipeline and outcome",
		}, []string{"pipeline", "outcome"}),
		VerificationChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verification_checks_total",
			Help:      "Human-verification checks by result (passed, rejected, unreachable)",
		}, []string{"result"}),
		NotificationsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Notification dispatches by recipient role and outcome",
		}, []string{"recipient", "outcome"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveSubmission(pipeline, outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(pipeline, outcome).Inc()
}

func (m *Metrics) ObserveVerification(result string) {
	if m == nil {
		return
	}
	m.VerificationChecks.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveNotification(recipient, outcome string) {
	if m == nil {
		return
	}
	m.NotificationsSent.WithLabelValues(recipient, outcome).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
}
