package database

import (
	"context"
	"testing"

	"maisonweb/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFeedback(t *testing.T) {
	db := requireTestDB(t)

	created, err := db.CreateFeedback(context.Background(), models.Feedback{
		ClientName:   "Alice",
		FeedbackText: "Great work",
		Rating:       5,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Alice", created.ClientName)
	assert.Equal(t, 5, created.Rating)
	assert.False(t, created.Approved)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateFeedback_RatingOutOfRange(t *testing.T) {
	db := requireTestDB(t)

	_, err := db.CreateFeedback(context.Background(), models.Feedback{
		ClientName:   "Bob",
		FeedbackText: "Trop bien",
		Rating:       6,
	})
	assert.Error(t, err)
}

func TestListFeedbacks_ApprovedOnly(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()

	pending, err := db.CreateFeedback(ctx, models.Feedback{ClientName: "Alice", FeedbackText: "En attente", Rating: 4})
	require.NoError(t, err)
	approved, err := db.CreateFeedback(ctx, models.Feedback{ClientName: "Bob", FeedbackText: "Publié", Rating: 5})
	require.NoError(t, err)

	_, err = db.Pool.Exec(ctx, "UPDATE feedbacks SET approved = TRUE WHERE id = $1", approved.ID)
	require.NoError(t, err)

	public, err := db.ListFeedbacks(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, approved.ID, public[0].ID)

	all, err := db.ListFeedbacks(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, pending.ID, all[1].ID, "newest first")
}
