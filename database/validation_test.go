package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name         string
		limit        int
		defaultLimit int
		maxLimit     int
		expected     int
	}{
		{
			name:         "use provided limit",
			limit:        10,
			defaultLimit: 24,
			maxLimit:     200,
			expected:     10,
		},
		{
			name:         "use default when zero",
			limit:        0,
			defaultLimit: 24,
			maxLimit:     200,
			expected:     24,
		},
		{
			name:         "use default when negative",
			limit:        -10,
			defaultLimit: 24,
			maxLimit:     200,
			expected:     24,
		},
		{
			name:         "cap at max",
			limit:        500,
			defaultLimit: 24,
			maxLimit:     200,
			expected:     200,
		},
		{
			name:         "exactly at max",
			limit:        200,
			defaultLimit: 24,
			maxLimit:     200,
			expected:     200,
		},
		{
			name:         "one below max",
			limit:        199,
			defaultLimit: 24,
			maxLimit:     200,
			expected:     199,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateLimit(tt.limit, tt.defaultLimit, tt.maxLimit)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidateOffset(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		expected int
	}{
		{
			name:     "positive offset",
			offset:   10,
			expected: 10,
		},
		{
			name:     "zero offset",
			offset:   0,
			expected: 0,
		},
		{
			name:     "negative offset becomes zero",
			offset:   -10,
			expected: 0,
		},
		{
			name:     "large offset",
			offset:   1000000,
			expected: 1000000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateOffset(tt.offset)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestProjectPagination(t *testing.T) {
	limit, offset := ProjectPagination(0, -5)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 0, offset)

	limit, offset = ProjectPagination(1000, 20)
	assert.Equal(t, 200, limit)
	assert.Equal(t, 20, offset)
}
