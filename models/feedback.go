package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a client testimonial. New feedback is never approved; approval
// is granted by moderation outside this service, and only approved feedback
// is listed publicly.
type Feedback struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ClientName   string    `json:"clientName" db:"client_name"`
	FeedbackText string    `json:"feedbackText" db:"feedback_text"`
	Rating       int       `json:"rating" db:"rating"`
	Approved     bool      `json:"approved" db:"approved"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// FeedbackSubmission is the payload of POST /api/feedbacks. Captcha is the
// field name used by older front-end builds and stands in for
// VerificationToken when the latter is empty.
type FeedbackSubmission struct {
	ClientName        string `json:"clientName"`
	FeedbackText      string `json:"feedbackText"`
	Rating            int    `json:"rating"`
	VerificationToken string `json:"verificationToken"`
	Captcha           string `json:"captcha"`
}

// Token returns the verification token, whichever field carried it.
func (s FeedbackSubmission) Token() string {
	if s.VerificationToken != "" {
		return s.VerificationToken
	}
	return s.Captcha
}

type FeedbacksResponse struct {
	Status    string     `json:"status"`
	Feedbacks []Feedback `json:"feedbacks"`
}
