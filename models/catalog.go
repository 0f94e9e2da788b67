package models

import (
	"time"

	"github.com/google/uuid"
)

// Image is a picture hosted by the external media store. PublicID is the
// store's own identifier, kept so the asset can be replaced or removed there.
type Image struct {
	URL      string `json:"url" yaml:"url"`
	PublicID string `json:"publicId" yaml:"publicId"`
}

// Service is a catalog offering shown on the home page and selectable when
// requesting a custom project. Titles are unique.
type Service struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Images      []Image   `json:"images" db:"images"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type ServicesResponse struct {
	Status   string    `json:"status"`
	Services []Service `json:"services"`
}
