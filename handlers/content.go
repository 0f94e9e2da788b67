package handlers

import (
	"context"
	"errors"
	"net/http"

	"maisonweb/database"
	"maisonweb/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const msgInvalidSearch = "Recherche invalide : saisissez entre 2 et 200 caractères, lettres ou chiffres."

// ContentStore is the read side of the content store.
type ContentStore interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListProjects(ctx context.Context, params models.ProjectQueryParams) ([]models.Project, int64, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	ListFeedbacks(ctx context.Context, approvedOnly bool) ([]models.Feedback, error)
}

func ListServices(store ContentStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		services, err := store.ListServices(c.Request.Context())
		if err != nil {
			log.Error("ListServices failed", zap.Error(err))
			failed(c, http.StatusInternalServerError, "failed to list services")
			return
		}

		c.JSON(http.StatusOK, models.ServicesResponse{Status: models.StatusSuccess, Services: services})
	}
}

func ListProjects(store ContentStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.ProjectQueryParams
		if err := c.ShouldBindQuery(&params); err != nil {
			failed(c, http.StatusBadRequest, "invalid query parameters")
			return
		}

		projects, total, err := store.ListProjects(c.Request.Context(), params)
		if err != nil {
			if errors.Is(err, database.ErrInvalidSearch) {
				log.Info("ListProjects rejected search", zap.String("search", params.Search), zap.Error(err))
				failed(c, http.StatusBadRequest, msgInvalidSearch)
				return
			}
			log.Error("ListProjects failed", zap.Error(err))
			failed(c, http.StatusInternalServerError, "failed to list projects")
			return
		}

		limit, offset := database.ProjectPagination(params.Limit, params.Offset)

		c.JSON(http.StatusOK, models.ProjectsResponse{
			Status:   models.StatusSuccess,
			Projects: projects,
			Total:    total,
			Limit:    limit,
			Offset:   offset,
			HasMore:  int64(offset+len(projects)) < total,
		})
	}
}

func GetProject(store ContentStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			failed(c, http.StatusNotFound, "Project not found")
			return
		}

		project, err := store.GetProject(c.Request.Context(), projectID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				failed(c, http.StatusNotFound, "Project not found")
				return
			}
			log.Error("GetProject failed", zap.String("id", projectID.String()), zap.Error(err))
			failed(c, http.StatusInternalServerError, "failed to get project")
			return
		}

		c.JSON(http.StatusOK, models.ProjectResponse{Status: models.StatusSuccess, Project: project})
	}
}

func ListBrands(store ContentStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		brands, err := store.ListBrands(c.Request.Context())
		if err != nil {
			log.Error("ListBrands failed", zap.Error(err))
			failed(c, http.StatusInternalServerError, "failed to list brands")
			return
		}

		c.JSON(http.StatusOK, models.BrandsResponse{Status: models.StatusSuccess, Brands: brands})
	}
}

// ListFeedbacks only ever returns approved reviews.
func ListFeedbacks(store ContentStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		feedbacks, err := store.ListFeedbacks(c.Request.Context(), true)
		if err != nil {
			log.Error("ListFeedbacks failed", zap.Error(err))
			failed(c, http.StatusInternalServerError, "failed to list feedbacks")
			return
		}

		c.JSON(http.StatusOK, models.FeedbacksResponse{Status: models.StatusSuccess, Feedbacks: feedbacks})
	}
}

func failed(c *gin.Context, status int, message string) {
	c.JSON(status, models.StatusResponse{Status: models.StatusFailed, Message: message})
}
