package handlers

import (
	"context"
	"errors"
	"net/http"

	"maisonweb/models"
	"maisonweb/submissions"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInvalidPayload = "Données invalides."

type FeedbackSubmitter interface {
	Submit(ctx context.Context, in submissions.FeedbackInput) (*submissions.FeedbackResult, error)
}

type ProjectRequestSubmitter interface {
	Submit(ctx context.Context, in submissions.ProjectRequestInput) (string, error)
}

func SubmitFeedback(pipeline FeedbackSubmitter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.FeedbackSubmission
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Info("Feedback bind error", zap.Error(err))
			failed(c, http.StatusBadRequest, msgInvalidPayload)
			return
		}

		result, err := pipeline.Submit(c.Request.Context(), submissions.FeedbackInput{
			ClientName:   req.ClientName,
			FeedbackText: req.FeedbackText,
			Rating:       req.Rating,
			Token:        req.Token(),
			RemoteIP:     c.ClientIP(),
		})
		if err != nil {
			submissionFailed(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.StatusResponse{
			Status:  models.StatusSuccess,
			Message: result.Message,
			ID:      result.ID.String(),
		})
	}
}

func SubmitProjectRequest(pipeline ProjectRequestSubmitter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Info("Project request bind error", zap.Error(err))
			failed(c, http.StatusBadRequest, msgInvalidPayload)
			return
		}

		message, err := pipeline.Submit(c.Request.Context(), submissions.ProjectRequestInput{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Budget:    req.Budget,
			ServiceID: req.ServiceID,
			Summary:   req.Summary,
		})
		if err != nil {
			submissionFailed(c, err)
			return
		}

		c.JSON(http.StatusOK, models.StatusResponse{Status: models.StatusSuccess, Message: message})
	}
}

// submissionStatus maps a pipeline error to its HTTP status.
func submissionStatus(err error) int {
	switch {
	case errors.Is(err, submissions.ErrValidationFailed),
		errors.Is(err, submissions.ErrVerificationFailed):
		return http.StatusBadRequest
	case errors.Is(err, submissions.ErrServiceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// submissionFailed writes err with the visitor-safe message it carries,
// never the underlying cause.
func submissionFailed(c *gin.Context, err error) {
	message := submissions.MsgInternal
	var subErr *submissions.Error
	if errors.As(err, &subErr) && subErr.Message != "" {
		message = subErr.Message
	}
	failed(c, submissionStatus(err), message)
}
