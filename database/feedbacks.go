package database

import (
	"context"
	"fmt"

	"maisonweb/models"

	"go.uber.org/zap"
)

const feedbackColumns = `id, client_name, feedback_text, rating, approved, created_at, updated_at`

// CreateFeedback inserts a review exactly as given, approval flag included,
// and returns the stored row with its generated id and timestamps.
func (db *DB) CreateFeedback(ctx context.Context, feedback models.Feedback) (*models.Feedback, error) {
	query := `
		INSERT INTO feedbacks (client_name, feedback_text, rating, approved)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + feedbackColumns

	created, err := scanFeedback(db.Pool.QueryRow(ctx, query,
		feedback.ClientName, feedback.FeedbackText, feedback.Rating, feedback.Approved))
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	db.log.Info("Created feedback", zap.String("id", created.ID.String()), zap.Int("rating", created.Rating))
	return created, nil
}

// ListFeedbacks returns reviews newest first. When approvedOnly is set,
// unmoderated reviews are left out.
func (db *DB) ListFeedbacks(ctx context.Context, approvedOnly bool) ([]models.Feedback, error) {
	qb := NewQueryBuilder()
	if approvedOnly {
		qb.AddCondition(columnApproved, true)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM feedbacks
		%s
		ORDER BY %s DESC
	`, feedbackColumns, qb.WhereClause(), columnCreatedAt)

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}
	defer rows.Close()

	feedbacks := []models.Feedback{}
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		feedbacks = append(feedbacks, *feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedbacks: %w", err)
	}

	return feedbacks, nil
}

func scanFeedback(row rowScanner) (*models.Feedback, error) {
	var feedback models.Feedback
	err := row.Scan(
		&feedback.ID,
		&feedback.ClientName,
		&feedback.FeedbackText,
		&feedback.Rating,
		&feedback.Approved,
		&feedback.CreatedAt,
		&feedback.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}
