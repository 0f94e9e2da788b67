package database

import (
	"fmt"
	"strings"
)

const (
	columnType          = "type"
	columnDisplayOnHome = "display_on_home"
	columnApproved      = "approved"
	columnCreatedAt     = "created_at"

	// projectSearchDocument is the text indexed for portfolio search. It must
	// match the expression of idx_projects_search.
	projectSearchDocument = "to_tsvector('simple', title || ' ' || description)"
)

// QueryBuilder collects AND-ed WHERE conditions with their positional
// arguments. Column names come from the constants above, never from input.
type QueryBuilder struct {
	conditions []string
	args       []interface{}
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// bind appends value and returns its placeholder.
func (qb *QueryBuilder) bind(value interface{}) string {
	qb.args = append(qb.args, value)
	return fmt.Sprintf("$%d", len(qb.args))
}

func (qb *QueryBuilder) AddCondition(column string, value interface{}) {
	qb.conditions = append(qb.conditions, column+" = "+qb.bind(value))
}

// AddCaseInsensitive matches column against value ignoring case.
func (qb *QueryBuilder) AddCaseInsensitive(column, value string) {
	qb.conditions = append(qb.conditions, "LOWER("+column+") = LOWER("+qb.bind(value)+")")
}

// AddFullTextSearch matches document against an already parsed tsquery.
func (qb *QueryBuilder) AddFullTextSearch(document, tsQuery string) {
	qb.conditions = append(qb.conditions, document+" @@ to_tsquery('simple', "+qb.bind(tsQuery)+")")
}

func (qb *QueryBuilder) WhereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

// Paginate binds limit and offset after the conditions and returns the
// matching LIMIT/OFFSET clause.
func (qb *QueryBuilder) Paginate(limit, offset int) string {
	return "LIMIT " + qb.bind(limit) + " OFFSET " + qb.bind(offset)
}

func (qb *QueryBuilder) Args() []interface{} {
	return qb.args
}

func validateLimit(limit, defaultLimit, maxLimit int) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}

func validateOffset(offset int) int {
	return max(offset, 0)
}
