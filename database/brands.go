package database

import (
	"context"
	"fmt"

	"maisonweb/models"
)

func (db *DB) ListBrands(ctx context.Context) ([]models.Brand, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM brands
		ORDER BY name
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		var brand models.Brand
		if err := rows.Scan(&brand.ID, &brand.Name, &brand.Image, &brand.CreatedAt, &brand.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating brands: %w", err)
	}

	return brands, nil
}
