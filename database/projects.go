package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maisonweb/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	defaultProjectLimit = 50
	maxProjectLimit     = 200

	projectColumns = `id, title, type, description, images, completion_year, duration,
		technologies, link, display_on_home, created_at, updated_at`
)

// ListProjects returns portfolio projects, newest completion first, filtered
// by params. A search term is parsed with SearchQueryParser; a rejected term
// yields an error wrapping ErrInvalidSearch.
func (db *DB) ListProjects(ctx context.Context, params models.ProjectQueryParams) ([]models.Project, int64, error) {
	start := time.Now()
	defer func() {
		db.log.Debug("ListProjects",
			zap.Duration("duration", time.Since(start)),
			zap.Bool("home", params.Home),
			zap.String("type", params.Type),
			zap.String("search", params.Search))
	}()

	limit, offset := ProjectPagination(params.Limit, params.Offset)

	qb := NewQueryBuilder()
	if params.Home {
		qb.AddCondition(columnDisplayOnHome, true)
	}
	if params.Type != "" {
		qb.AddCaseInsensitive(columnType, params.Type)
	}
	if params.Search != "" {
		tsQuery, err := NewSearchQueryParser().Parse(params.Search)
		if err != nil {
			return nil, 0, err
		}
		qb.AddFullTextSearch(projectSearchDocument, tsQuery)
	}

	// Visitor input only ever reaches the query as bound arguments.
	where := qb.WhereClause()
	filterArgs := len(qb.Args())
	page := qb.Paginate(limit, offset)
	query := fmt.Sprintf(`
		SELECT %s,
			COUNT(*) OVER() AS total_count
		FROM projects
		%s
		ORDER BY completion_year DESC, %s DESC
		%s
	`, projectColumns, where, columnCreatedAt, page)

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects, total, err := scanProjectsWithTotal(rows)
	if err != nil || len(projects) > 0 || offset == 0 {
		return projects, total, err
	}

	// A page past the end carries no window count.
	total, err = db.countProjects(ctx, where, qb.Args()[:filterArgs])
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (db *DB) countProjects(ctx context.Context, where string, args []interface{}) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM projects ` + where
	if err := db.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return total, nil
}

func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(db.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// ProjectPagination returns the limit and offset ListProjects applies for
// the requested ones.
func ProjectPagination(limit, offset int) (int, int) {
	return validateLimit(limit, defaultProjectLimit, maxProjectLimit), validateOffset(offset)
}

// Helper functions

func projectArgs(p models.Project) []interface{} {
	images := p.Images
	if images == nil {
		images = []models.Image{}
	}
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return []interface{}{
		p.Title, p.Type, p.Description, images, p.CompletionYear,
		p.Duration, technologies, p.Link, p.DisplayOnHome,
	}
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Type,
		&project.Description,
		&project.Images,
		&project.CompletionYear,
		&project.Duration,
		&project.Technologies,
		&project.Link,
		&project.DisplayOnHome,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func scanProjectsWithTotal(rows rowsScanner) ([]models.Project, int64, error) {
	projects := []models.Project{}
	var total int64

	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Type,
			&project.Description,
			&project.Images,
			&project.CompletionYear,
			&project.Duration,
			&project.Technologies,
			&project.Link,
			&project.DisplayOnHome,
			&project.CreatedAt,
			&project.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, total, nil
}
