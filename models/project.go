package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var completionYearPattern = regexp.MustCompile(`^\d{4}$`)

// Project is a completed engagement shown in the portfolio.
// CompletionYear is always a four digit year ("2024").
// DisplayOnHome marks the projects featured in the home page preview.
type Project struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Type           string    `json:"type" db:"type"`
	Description    string    `json:"description" db:"description"`
	Images         []Image   `json:"images" db:"images"`
	CompletionYear string    `json:"dateOfCompletion" db:"completion_year"`
	Duration       string    `json:"duration,omitempty" db:"duration"`
	Technologies   []string  `json:"technologies,omitempty" db:"technologies"`
	Link           string    `json:"link,omitempty" db:"link"`
	DisplayOnHome  bool      `json:"displayOnHome" db:"display_on_home"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// ValidCompletionYear reports whether year is a four digit year.
func ValidCompletionYear(year string) bool {
	return completionYearPattern.MatchString(year)
}

// ProjectQueryParams are the portfolio listing filters.
type ProjectQueryParams struct {
	Home   bool   `form:"home"`
	Type   string `form:"type"`
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

type ProjectsResponse struct {
	Status   string    `json:"status"`
	Projects []Project `json:"projects"`
	Total    int64     `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
	HasMore  bool      `json:"has_more"`
}

type ProjectResponse struct {
	Status  string   `json:"status"`
	Project *Project `json:"project"`
}
