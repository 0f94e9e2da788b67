package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maisonweb/models"
	"maisonweb/submissions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) ListServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockContentStore) ListProjects(ctx context.Context, params models.ProjectQueryParams) ([]models.Project, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]models.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentStore) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockContentStore) ListBrands(ctx context.Context) ([]models.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Brand), args.Error(1)
}

func (m *MockContentStore) ListFeedbacks(ctx context.Context, approvedOnly bool) ([]models.Feedback, error) {
	args := m.Called(ctx, approvedOnly)
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockContentStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockFeedbackSubmitter struct {
	mock.Mock
}

func (m *MockFeedbackSubmitter) Submit(ctx context.Context, in submissions.FeedbackInput) (*submissions.FeedbackResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submissions.FeedbackResult), args.Error(1)
}

type MockProjectRequestSubmitter struct {
	mock.Mock
}

func (m *MockProjectRequestSubmitter) Submit(ctx context.Context, in submissions.ProjectRequestInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func newTestRouter(d Dependencies, guards ...gin.HandlerFunc) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	RegisterRoutes(r, d, guards...)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	return rec, decoded
}
