package database

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidSearch wraps every rejection from SearchQueryParser so callers
// can tell a bad query apart from a store failure.
var ErrInvalidSearch = errors.New("invalid search query")

// SearchQueryParser validates and transforms visitor search queries to
// PostgreSQL tsquery format for the portfolio search.
type SearchQueryParser struct {
	minLength int
	maxLength int
}

// NewSearchQueryParser creates a SearchQueryParser with default limits:
// at least 2 and at most 200 characters.
func NewSearchQueryParser() *SearchQueryParser {
	return &SearchQueryParser{
		minLength: 2,
		maxLength: 200,
	}
}

// Parse converts a visitor's search query to a prefix-matching tsquery.
//  1. Trims whitespace
//  2. Validates length
//  3. Replaces everything but letters and digits with spaces
//  4. Drops single-character words
//  5. Lowercases and suffixes each word with :*
//  6. Joins with " & "
//
// Examples:
//
//	"Site vitrine" → "site:* & vitrine:*"
//	"l'e-commerce" → "commerce:*"
func (p *SearchQueryParser) Parse(query string) (string, error) {
	query = strings.TrimSpace(query)

	if n := len([]rune(query)); n < p.minLength {
		return "", fmt.Errorf("%w: must be at least %d characters", ErrInvalidSearch, p.minLength)
	} else if n > p.maxLength {
		return "", fmt.Errorf("%w: too long (max %d characters)", ErrInvalidSearch, p.maxLength)
	}

	words := strings.Fields(p.sanitize(query))
	if len(words) == 0 {
		return "", fmt.Errorf("%w: empty", ErrInvalidSearch)
	}

	validWords := p.filterValidWords(words)
	if len(validWords) == 0 {
		return "", fmt.Errorf("%w: no valid search terms", ErrInvalidSearch)
	}

	terms := make([]string, len(validWords))
	for i, word := range validWords {
		terms[i] = word + ":*"
	}
	return strings.Join(terms, " & "), nil
}

func (p *SearchQueryParser) sanitize(query string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, query)
}

func (p *SearchQueryParser) filterValidWords(words []string) []string {
	valid := []string{}
	for _, word := range words {
		if len([]rune(word)) >= 2 {
			valid = append(valid, strings.ToLower(word))
		}
	}
	return valid
}
