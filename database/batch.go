package database

import (
	"context"
	"fmt"
	"time"

	"maisonweb/models"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BatchInsertError indicates which record failed during a batch insert.
type BatchInsertError struct {
	Kind        string
	FailedIndex int
	Total       int
	Err         error
}

func (e *BatchInsertError) Error() string {
	return fmt.Sprintf("failed to insert %s at index %d/%d: %v", e.Kind, e.FailedIndex, e.Total, e.Err)
}

func (e *BatchInsertError) Unwrap() error {
	return e.Err
}

// InsertServices inserts catalog services in a single round-trip.
// Empty slice is a no-op.
func (db *DB) InsertServices(ctx context.Context, services []models.Service) error {
	query := `INSERT INTO services (title, description, images) VALUES ($1, $2, $3)`

	rows := make([][]interface{}, len(services))
	for i, s := range services {
		rows[i] = serviceArgs(s)
	}
	return db.sendBatch(ctx, "service", query, rows)
}

// InsertProjects inserts portfolio projects in a single round-trip. Every
// completion year is checked before anything is sent.
func (db *DB) InsertProjects(ctx context.Context, projects []models.Project) error {
	query := `
		INSERT INTO projects (title, type, description, images, completion_year,
			duration, technologies, link, display_on_home)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	rows := make([][]interface{}, len(projects))
	for i, p := range projects {
		if !models.ValidCompletionYear(p.CompletionYear) {
			return &BatchInsertError{
				Kind:        "project",
				FailedIndex: i,
				Total:       len(projects),
				Err:         fmt.Errorf("completion year %q is not a four digit year", p.CompletionYear),
			}
		}
		rows[i] = projectArgs(p)
	}
	return db.sendBatch(ctx, "project", query, rows)
}

// InsertBrands inserts partner brands in a single round-trip.
func (db *DB) InsertBrands(ctx context.Context, brands []models.Brand) error {
	query := `INSERT INTO brands (name, image) VALUES ($1, $2)`

	rows := make([][]interface{}, len(brands))
	for i, b := range brands {
		rows[i] = []interface{}{b.Name, b.Image}
	}
	return db.sendBatch(ctx, "brand", query, rows)
}

// sendBatch runs query once per row inside an implicit transaction, so a
// failing row leaves none of the batch behind.
func (db *DB) sendBatch(ctx context.Context, kind, query string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	start := time.Now()
	defer func() {
		db.log.Info("Batch insert",
			zap.String("kind", kind),
			zap.Int("count", len(rows)),
			zap.Duration("duration", time.Since(start)))
	}()

	batch := &pgx.Batch{}
	for _, args := range rows {
		batch.Queue(query, args...)
	}

	results := db.Pool.SendBatch(ctx, batch)
	defer func() {
		_ = results.Close()
	}()

	for i := 0; i < len(rows); i++ {
		if _, err := results.Exec(); err != nil {
			return &BatchInsertError{
				Kind:        kind,
				FailedIndex: i,
				Total:       len(rows),
				Err:         err,
			}
		}
	}

	return nil
}
