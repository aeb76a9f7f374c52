package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestionobras/obras-backend-go/internal/domain/worksite"
	"github.com/gestionobras/obras-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type worksiteRepositoryImpl struct {
	db *database.DB
}

func NewWorksiteRepository(db *database.DB) worksite.WorksiteRepository {
	return &worksiteRepositoryImpl{db: db}
}

const worksiteColumns = `w.id, w.project_id, w.name, w.description, w.address,
	   w.supervisor_id, w.architect_id, w.state, w.start_date, w.end_date,
	   w.budget, w.progress, w.notes, w.created_at, w.updated_at,
	   p.name AS project_name,
	   s.first_name || ' ' || s.last_name AS supervisor_name,
	   a.first_name || ' ' || a.last_name AS architect_name`

const worksiteJoins = `
	FROM worksites w
	JOIN projects p ON w.project_id = p.id
	LEFT JOIN users s ON w.supervisor_id = s.id
	LEFT JOIN users a ON w.architect_id = a.id`

func scanWorksite(row pgx.Row) (worksite.Worksite, error) {
	var w worksite.Worksite
	err := row.Scan(
		&w.ID,
		&w.ProjectID,
		&w.Name,
		&w.Description,
		&w.Address,
		&w.SupervisorID,
		&w.ArchitectID,
		&w.State,
		&w.StartDate,
		&w.EndDate,
		&w.Budget,
		&w.Progress,
		&w.Notes,
		&w.CreatedAt,
		&w.UpdatedAt,
		&w.ProjectName,
		&w.SupervisorName,
		&w.ArchitectName,
	)
	return w, err
}

// Create implements worksite.WorksiteRepository.
func (r *worksiteRepositoryImpl) Create(ctx context.Context, w worksite.Worksite) (worksite.Worksite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worksites (
			project_id, name, description, address, supervisor_id, architect_id,
			state, start_date, end_date, budget, progress, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		w.ProjectID, w.Name, w.Description, w.Address, w.SupervisorID, w.ArchitectID,
		w.State, w.StartDate, w.EndDate, w.Budget, w.Progress, w.Notes,
	).Scan(&id)
	if err != nil {
		return worksite.Worksite{}, fmt.Errorf("failed to insert worksite: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements worksite.WorksiteRepository.
func (r *worksiteRepositoryImpl) GetByID(ctx context.Context, id string) (worksite.Worksite, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + worksiteColumns + worksiteJoins + ` WHERE w.id = $1`

	w, err := scanWorksite(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worksite.Worksite{}, worksite.ErrWorksiteNotFound
		}
		return worksite.Worksite{}, err
	}
	return w, nil
}

// List implements worksite.WorksiteRepository.
func (r *worksiteRepositoryImpl) List(ctx context.Context, filter worksite.Filter) ([]worksite.Worksite, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := worksiteJoins + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.ProjectID != nil {
		baseQuery += fmt.Sprintf(" AND w.project_id = $%d", argIdx)
		args = append(args, *filter.ProjectID)
		argIdx++
	}
	if filter.State != nil {
		baseQuery += fmt.Sprintf(" AND w.state = $%d", argIdx)
		args = append(args, *filter.State)
		argIdx++
	}
	if filter.SupervisorID != nil {
		baseQuery += fmt.Sprintf(" AND w.supervisor_id = $%d", argIdx)
		args = append(args, *filter.SupervisorID)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count worksites: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	selectQuery := fmt.Sprintf(`SELECT %s %s ORDER BY w.start_date DESC LIMIT $%d OFFSET $%d`,
		worksiteColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.PageSize, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list worksites: %w", err)
	}
	defer rows.Close()

	var worksites []worksite.Worksite
	for rows.Next() {
		w, err := scanWorksite(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worksite: %w", err)
		}
		worksites = append(worksites, w)
	}

	return worksites, totalCount, rows.Err()
}

// Update implements worksite.WorksiteRepository.
func (r *worksiteRepositoryImpl) Update(ctx context.Context, w worksite.Worksite) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE worksites
		SET name = $1, description = $2, address = $3, supervisor_id = $4, architect_id = $5,
		    state = $6, start_date = $7, end_date = $8, budget = $9, progress = $10,
		    notes = $11, updated_at = NOW()
		WHERE id = $12
	`

	tag, err := q.Exec(ctx, query,
		w.Name, w.Description, w.Address, w.SupervisorID, w.ArchitectID,
		w.State, w.StartDate, w.EndDate, w.Budget, w.Progress, w.Notes, w.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update worksite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worksite.ErrWorksiteNotFound
	}
	return nil
}

// Delete implements worksite.WorksiteRepository.
func (r *worksiteRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM worksites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worksite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worksite.ErrWorksiteNotFound
	}
	return nil
}
