package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a partner logo displayed in the marquee.
type Brand struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Image     Image     `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type BrandsResponse struct {
	Status string  `json:"status"`
	Brands []Brand `json:"brands"`
}
