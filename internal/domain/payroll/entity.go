package payroll

import (
	"time"

	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// State enum
type State string

const (
	StatePending   State = "pending"
	StatePaid      State = "paid"
	StateCancelled State = "cancelled"
)

func (s State) Valid() bool {
	switch s {
	case StatePending, StatePaid, StateCancelled:
		return true
	}
	return false
}

// PayrollRecord - one employee's payroll for one period
type PayrollRecord struct {
	ID               string
	EmployeeID       string
	Period           string // "YYYY-MM"
	DaysWorked       decimal.Decimal
	BaseSalary       decimal.Decimal
	OvertimeHours    decimal.Decimal
	Bonuses          decimal.Decimal
	Deductions       decimal.Decimal
	OvertimePay      decimal.Decimal
	Total            decimal.Decimal
	State            State
	Comment          *string
	LastModifiedByID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName       *string
	LastModifiedByName *string
}

// A month is modeled as 30 days of 8 hours for the hourly rate, regardless of
// the calendar month length. The days-worked cap in dto.go is calendar-aware;
// the mismatch is intentional, it mirrors how payroll has always been computed
// here.
var (
	monthlyWorkHours   = decimal.NewFromInt(30 * 8)
	overtimeMultiplier = decimal.RequireFromString("1.5")
)

// ComputeTotal derives the overtime pay and total from the four monetary
// inputs. The total is never taken from client input. All results are rounded
// to two decimal places.
func ComputeTotal(baseSalary, overtimeHours, bonuses, deductions decimal.Decimal) (overtimePay, total decimal.Decimal, err error) {
	for _, v := range []decimal.Decimal{baseSalary, overtimeHours, bonuses, deductions} {
		if v.IsNegative() {
			return decimal.Zero, decimal.Zero, ErrNegativeAmount
		}
	}

	normalHourlyRate := baseSalary.Div(monthlyWorkHours)
	overtimePay = overtimeHours.Mul(normalHourlyRate).Mul(overtimeMultiplier).Round(2)
	total = baseSalary.Add(overtimePay).Add(bonuses).Sub(deductions).Round(2)

	if total.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrNegativeTotal
	}

	return overtimePay, total, nil
}

// CanTransition decides whether actor may move a record from current to
// requested. Field edits go through the same check with requested == current,
// so a paid or cancelled record can never be touched again.
func CanTransition(current, requested State, actor user.User) (bool, string) {
	if current == StatePaid && requested != StatePaid {
		return false, "cannot modify a paid record"
	}
	if current == StateCancelled {
		return false, "cannot modify a cancelled record"
	}
	if requested == StatePaid && !user.Allowed(actor, user.PermissionProcessPayroll) {
		return false, "not authorized to process payroll"
	}
	if requested == StateCancelled && !user.Allowed(actor, user.PermissionCancelPayroll) {
		return false, "not authorized to cancel payroll"
	}
	return true, ""
}
