package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestionobras/obras-backend-go/internal/domain/project"
	"github.com/gestionobras/obras-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `p.id, p.name, p.description, p.start_date, p.end_date, p.state,
	   p.budget, p.responsible_id, p.active, p.created_at, p.updated_at,
	   u.first_name || ' ' || u.last_name AS responsible_name`

const projectJoins = `
	FROM projects p
	LEFT JOIN users u ON p.responsible_id = u.id`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.StartDate,
		&p.EndDate,
		&p.State,
		&p.Budget,
		&p.ResponsibleID,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.ResponsibleName,
	)
	return p, err
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (name, description, start_date, end_date, state, budget, responsible_id, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		p.Name, p.Description, p.StartDate, p.EndDate, p.State, p.Budget, p.ResponsibleID, p.Active,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_projects_name") {
			return project.Project{}, project.ErrNameExists
		}
		return project.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + projectJoins + ` WHERE p.id = $1`

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context, filter project.Filter) ([]project.Project, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := projectJoins + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.State != nil {
		baseQuery += fmt.Sprintf(" AND p.state = $%d", argIdx)
		args = append(args, *filter.State)
		argIdx++
	}
	if filter.Active != nil {
		baseQuery += fmt.Sprintf(" AND p.active = $%d", argIdx)
		args = append(args, *filter.Active)
		argIdx++
	}
	if filter.Search != nil {
		baseQuery += fmt.Sprintf(" AND p.name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	selectQuery := fmt.Sprintf(`SELECT %s %s ORDER BY p.start_date DESC LIMIT $%d OFFSET $%d`,
		projectColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.PageSize, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, totalCount, rows.Err()
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, description = $2, start_date = $3, end_date = $4, state = $5,
		    budget = $6, responsible_id = $7, active = $8, updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		p.Name, p.Description, p.StartDate, p.EndDate, p.State, p.Budget, p.ResponsibleID, p.Active, p.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_projects_name") {
			return project.ErrNameExists
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}
