package payroll

import (
	"fmt"
	"time"

	"github.com/gestionobras/obras-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	EmployeeID    string          `json:"employee_id"`
	Period        string          `json:"period"`
	DaysWorked    decimal.Decimal `json:"days_worked"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Bonuses       decimal.Decimal `json:"bonuses"`
	Deductions    decimal.Decimal `json:"deductions"`
	Comment       *string         `json:"comment,omitempty"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	errs = append(errs, validateFields(r.Period, r.DaysWorked, r.BaseSalary, r.OvertimeHours, r.Bonuses, r.Deductions)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollRequest struct {
	ID            string           `json:"-"`
	DaysWorked    *decimal.Decimal `json:"days_worked,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	Bonuses       *decimal.Decimal `json:"bonuses,omitempty"`
	Deductions    *decimal.Decimal `json:"deductions,omitempty"`
	Comment       *string          `json:"comment,omitempty"`
}

// ValidateFields applies the payroll field rules to a full set of values.
// Used after merging a partial update into an existing record.
func ValidateFields(period string, daysWorked, baseSalary, overtimeHours, bonuses, deductions decimal.Decimal) error {
	if errs := validateFields(period, daysWorked, baseSalary, overtimeHours, bonuses, deductions); len(errs) > 0 {
		return errs
	}
	return nil
}

// validateFields applies the payroll field rules. The days-worked cap respects
// the real calendar month, leap years included.
func validateFields(period string, daysWorked, baseSalary, overtimeHours, bonuses, deductions decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	daysInMonth := validator.DaysInPeriod(period)
	if daysInMonth == 0 {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must have the format YYYY-MM"})
	}

	if !daysWorked.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "days_worked", Message: "must be greater than 0"})
	} else if daysInMonth > 0 && daysWorked.GreaterThan(decimal.NewFromInt(int64(daysInMonth))) {
		errs = append(errs, validator.ValidationError{
			Field:   "days_worked",
			Message: fmt.Sprintf("days worked exceeds days in month (%d)", daysInMonth),
		})
	}

	if !baseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than 0"})
	}

	if overtimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	} else if daysWorked.IsPositive() {
		// Policy cap: at most 4 overtime hours per worked day
		maxOvertime := daysWorked.Mul(decimal.NewFromInt(4))
		if overtimeHours.GreaterThan(maxOvertime) {
			errs = append(errs, validator.ValidationError{
				Field:   "overtime_hours",
				Message: fmt.Sprintf("overtime cap exceeded (max %s for %s days worked)", maxOvertime.String(), daysWorked.String()),
			})
		}
	}

	if bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonuses", Message: "must be non-negative"})
	}
	if deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}

	return errs
}

type PayrollResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name,omitempty"`
	Period             string          `json:"period"`
	DaysWorked         decimal.Decimal `json:"days_worked"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	Bonuses            decimal.Decimal `json:"bonuses"`
	Deductions         decimal.Decimal `json:"deductions"`
	Total              decimal.Decimal `json:"total"`
	State              string          `json:"state"`
	Comment            *string         `json:"comment,omitempty"`
	LastModifiedByName *string         `json:"last_modified_by_name,omitempty"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

type PayrollFilter struct {
	Period     *string `json:"period,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	State      *string `json:"state,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Period != nil {
		if !validator.IsValidPeriod(*f.Period) {
			errs = append(errs, validator.ValidationError{Field: "period", Message: "must have the format YYYY-MM"})
		}
	}
	if f.State != nil && !State(*f.State).Valid() {
		errs = append(errs, validator.ValidationError{Field: "state", Message: "invalid state"})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToResponse maps a record to its API shape.
func ToResponse(r PayrollRecord) PayrollResponse {
	resp := PayrollResponse{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		Period:             r.Period,
		DaysWorked:         r.DaysWorked,
		BaseSalary:         r.BaseSalary,
		OvertimeHours:      r.OvertimeHours,
		OvertimePay:        r.OvertimePay,
		Bonuses:            r.Bonuses,
		Deductions:         r.Deductions,
		Total:              r.Total,
		State:              string(r.State),
		Comment:            r.Comment,
		LastModifiedByName: r.LastModifiedByName,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          r.UpdatedAt.Format(time.RFC3339),
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	return resp
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// StatisticsResponse aggregates payroll by state, mirrors the reporting screen
type StatisticsResponse struct {
	General       StatisticsCounts    `json:"general"`
	Amounts       StatisticsAmounts   `json:"amounts"`
	CurrentPeriod PeriodStatistics    `json:"current_period"`
	TopEmployees  []EmployeeStatistic `json:"top_employees"`
}

type StatisticsCounts struct {
	Total     int64 `json:"total"`
	Paid      int64 `json:"paid"`
	Pending   int64 `json:"pending"`
	Cancelled int64 `json:"cancelled"`
}

type StatisticsAmounts struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

type PeriodStatistics struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
}

type EmployeeStatistic struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	RecordCount  int64           `json:"record_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}
