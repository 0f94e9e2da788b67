package database

import (
	"context"
	"errors"
	"fmt"

	"maisonweb/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const serviceColumns = `id, title, description, images, created_at, updated_at`

func (db *DB) ListServices(ctx context.Context) ([]models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY title`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, *service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating services: %w", err)
	}

	return services, nil
}

// GetService returns the catalog service with the given id, or an error
// wrapping ErrNotFound.
func (db *DB) GetService(ctx context.Context, serviceID uuid.UUID) (*models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	service, err := scanService(db.Pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("service %s: %w", serviceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return service, nil
}

func serviceArgs(s models.Service) []interface{} {
	images := s.Images
	if images == nil {
		images = []models.Image{}
	}
	return []interface{}{s.Title, s.Description, images}
}

func scanService(row rowScanner) (*models.Service, error) {
	var service models.Service
	err := row.Scan(
		&service.ID,
		&service.Title,
		&service.Description,
		&service.Images,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}
