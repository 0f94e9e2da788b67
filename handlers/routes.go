package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the routes are built from.
type Dependencies struct {
	Store           ContentStore
	Health          Pinger
	Feedback        FeedbackSubmitter
	ProjectRequests ProjectRequestSubmitter
	Metrics         http.Handler
	Log             *zap.Logger
}

// RegisterRoutes mounts every route on r. submissionGuards run in front of
// the two POST routes only.
func RegisterRoutes(r gin.IRouter, d Dependencies, submissionGuards ...gin.HandlerFunc) {
	r.GET("/health", HealthCheck(d.Health))
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}

	api := r.Group("/api")
	api.GET("/services", ListServices(d.Store, d.Log))
	api.GET("/projects", ListProjects(d.Store, d.Log))
	api.GET("/projects/:id", GetProject(d.Store, d.Log))
	api.GET("/brands", ListBrands(d.Store, d.Log))
	api.GET("/feedbacks", ListFeedbacks(d.Store, d.Log))

	api.POST("/feedbacks", guarded(submissionGuards, SubmitFeedback(d.Feedback, d.Log))...)
	api.POST("/custom-projects", guarded(submissionGuards, SubmitProjectRequest(d.ProjectRequests, d.Log))...)
}

func guarded(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	return append(append(chain, guards...), h)
}
