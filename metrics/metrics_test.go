package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSubmission(t *testing.T) {
	m := New()

	m.ObserveSubmission(PipelineFeedback, "success")
	m.ObserveSubmission(PipelineFeedback, "success")
	m.ObserveSubmission(PipelineProjectRequest, "service_not_found")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Submissions.WithLabelValues(PipelineFeedback, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(PipelineProjectRequest, "service_not_found")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveSubmission(PipelineFeedback, "success")
		m.ObserveVerification("passed")
		m.ObserveNotification("operator", "sent")
		m.ObserveRequest("GET", "/health", "200")
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveVerification("rejected")
	m.ObserveNotification("requester", "failed")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `maisonweb_verification_checks_total{result="rejected"} 1`)
	assert.Contains(t, string(body), `maisonweb_notifications_sent_total{outcome="failed",recipient="requester"} 1`)
}
