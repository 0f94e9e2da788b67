package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		input  string
		want   Budget
		wantOK bool
	}{
		{"< 5K", BudgetUnder5K, true},
		{"5K-10K", Budget5KTo10K, true},
		{"> 10K", BudgetOver10K, true},
		{"  > 10k ", BudgetOver10K, true},
		{"Moins de 5K €", BudgetUnder5K, true},
		{"5k-10k €", Budget5KTo10K, true},
		{"Plus de 10K €", BudgetOver10K, true},
		{"", "", false},
		{"10K-20K", "", false},
		{"beaucoup", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseBudget(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeedbackSubmission_Token(t *testing.T) {
	assert.Equal(t, "tok", FeedbackSubmission{VerificationToken: "tok", Captcha: "legacy"}.Token())
	assert.Equal(t, "legacy", FeedbackSubmission{Captcha: "legacy"}.Token())
	assert.Empty(t, FeedbackSubmission{}.Token())
}

func TestValidCompletionYear(t *testing.T) {
	assert.True(t, ValidCompletionYear("2024"))
	assert.True(t, ValidCompletionYear("1999"))
	assert.False(t, ValidCompletionYear("24"))
	assert.False(t, ValidCompletionYear("2024-05"))
	assert.False(t, ValidCompletionYear("year"))
	assert.False(t, ValidCompletionYear(""))
}
