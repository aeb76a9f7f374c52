package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gestionobras/obras-backend-go/internal/domain/attendance"
	"github.com/gestionobras/obras-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.user_id, a.date, a.time, a.kind, a.location, a.notes,
	   a.created_at, a.updated_at, u.first_name || ' ' || u.last_name AS user_name`

const attendanceJoins = `
	FROM attendance_records a
	JOIN users u ON a.user_id = u.id`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Date,
		&rec.Time,
		&rec.Kind,
		&rec.Location,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.UserName,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (user_id, date, time, kind, location, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		record.UserID, record.Date, record.Time, record.Kind, record.Location, record.Notes,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_user_date_kind") {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.id = $1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

// Exists implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Exists(ctx context.Context, userID string, date time.Time, kind attendance.Kind) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance_records WHERE user_id = $1 AND date = $2 AND kind = $3)`,
		userID, date, kind,
	).Scan(&exists)
	return exists, err
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := attendanceJoins + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		baseQuery += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Kind != nil {
		baseQuery += fmt.Sprintf(" AND a.kind = $%d", argIdx)
		args = append(args, *filter.Kind)
		argIdx++
	}
	if filter.DateFrom != nil {
		baseQuery += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		baseQuery += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	selectQuery := fmt.Sprintf(`SELECT %s %s ORDER BY a.date DESC, a.time DESC LIMIT $%d OFFSET $%d`,
		attendanceColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.PageSize, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, filter attendance.MyFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := attendanceJoins + ` WHERE a.user_id = $1`
	args := []interface{}{userID}
	argIdx := 2

	if filter.DateFrom != nil {
		baseQuery += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		baseQuery += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	selectQuery := fmt.Sprintf(`SELECT %s %s ORDER BY a.date, a.time`, attendanceColumns, baseQuery)
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		selectQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, filter.PageSize, offset)
	}

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET time = $1, location = $2, notes = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, record.Time, record.Location, record.Notes, record.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
