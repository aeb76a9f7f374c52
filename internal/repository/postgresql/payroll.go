package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestionobras/obras-backend-go/internal/domain/payroll"
	"github.com/gestionobras/obras-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `pr.id, pr.employee_id, pr.period, pr.days_worked, pr.base_salary,
	   pr.overtime_hours, pr.bonuses, pr.deductions, pr.overtime_pay, pr.total,
	   pr.state, pr.comment, pr.last_modified_by, pr.created_at, pr.updated_at,
	   u.first_name || ' ' || u.last_name AS employee_name,
	   m.first_name || ' ' || m.last_name AS last_modified_by_name`

const payrollJoins = `
	FROM payroll_records pr
	JOIN users u ON pr.employee_id = u.id
	LEFT JOIN users m ON pr.last_modified_by = m.id`

func scanPayroll(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Period,
		&rec.DaysWorked,
		&rec.BaseSalary,
		&rec.OvertimeHours,
		&rec.Bonuses,
		&rec.Deductions,
		&rec.OvertimePay,
		&rec.Total,
		&rec.State,
		&rec.Comment,
		&rec.LastModifiedByID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeName,
		&rec.LastModifiedByName,
	)
	return rec, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, period, days_worked, base_salary, overtime_hours,
			bonuses, deductions, overtime_pay, total, state, comment, last_modified_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Period,
		record.DaysWorked,
		record.BaseSalary,
		record.OvertimeHours,
		record.Bonuses,
		record.Deductions,
		record.OvertimePay,
		record.Total,
		record.State,
		record.Comment,
		record.LastModifiedByID,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to insert payroll record: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + payrollJoins + ` WHERE pr.id = $1`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

// ExistsByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ExistsByEmployeePeriod(ctx context.Context, employeeID, period string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payroll_records WHERE employee_id = $1 AND period = $2)`,
		employeeID, period,
	).Scan(&exists)
	return exists, err
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := payrollJoins + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Period != nil {
		baseQuery += fmt.Sprintf(" AND pr.period = $%d", argIdx)
		args = append(args, *filter.Period)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.State != nil {
		baseQuery += fmt.Sprintf(" AND pr.state = $%d", argIdx)
		args = append(args, *filter.State)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`SELECT %s %s ORDER BY pr.period DESC, employee_name LIMIT $%d OFFSET $%d`,
		payrollColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET days_worked = $1, base_salary = $2, overtime_hours = $3, bonuses = $4,
		    deductions = $5, overtime_pay = $6, total = $7, comment = $8,
		    last_modified_by = $9, updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		record.DaysWorked,
		record.BaseSalary,
		record.OvertimeHours,
		record.Bonuses,
		record.Deductions,
		record.OvertimePay,
		record.Total,
		record.Comment,
		record.LastModifiedByID,
		record.ID,
	)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
	}

	return r.GetByID(ctx, record.ID)
}

// UpdateState implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateState(ctx context.Context, id string, state payroll.State, modifiedBy string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET state = $1, last_modified_by = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, state, modifiedBy, id)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

// Statistics implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Statistics(ctx context.Context, currentPeriod string) (payroll.StatisticsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var stats payroll.StatisticsResponse
	stats.CurrentPeriod.Period = currentPeriod

	countQuery := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE state = 'paid'),
			   COUNT(*) FILTER (WHERE state = 'pending'),
			   COUNT(*) FILTER (WHERE state = 'cancelled'),
			   COALESCE(SUM(total), 0),
			   COALESCE(SUM(total) FILTER (WHERE state = 'paid'), 0),
			   COALESCE(SUM(total) FILTER (WHERE state = 'pending'), 0),
			   COALESCE(SUM(total) FILTER (WHERE state = 'paid' AND period = $1), 0)
		FROM payroll_records
	`
	err := q.QueryRow(ctx, countQuery, currentPeriod).Scan(
		&stats.General.Total,
		&stats.General.Paid,
		&stats.General.Pending,
		&stats.General.Cancelled,
		&stats.Amounts.Total,
		&stats.Amounts.Paid,
		&stats.Amounts.Pending,
		&stats.CurrentPeriod.Total,
	)
	if err != nil {
		return payroll.StatisticsResponse{}, fmt.Errorf("failed to aggregate payroll statistics: %w", err)
	}

	topQuery := `
		SELECT pr.employee_id, u.first_name || ' ' || u.last_name, COUNT(*), SUM(pr.total)
		FROM payroll_records pr
		JOIN users u ON pr.employee_id = u.id
		WHERE pr.state = 'paid'
		GROUP BY pr.employee_id, u.first_name, u.last_name
		ORDER BY SUM(pr.total) DESC
		LIMIT 5
	`
	rows, err := q.Query(ctx, topQuery)
	if err != nil {
		return payroll.StatisticsResponse{}, fmt.Errorf("failed to query top employees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e payroll.EmployeeStatistic
		if err := rows.Scan(&e.EmployeeID, &e.EmployeeName, &e.RecordCount, &e.TotalAmount); err != nil {
			return payroll.StatisticsResponse{}, fmt.Errorf("failed to scan employee statistic: %w", err)
		}
		stats.TopEmployees = append(stats.TopEmployees, e)
	}

	return stats, rows.Err()
}
