package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollAlreadyExists = errors.New("payroll record already exists for this employee and period")
	ErrNegativeAmount       = errors.New("monetary values cannot be negative")
	ErrNegativeTotal        = errors.New("computed total cannot be negative")
	ErrInvalidPeriod        = errors.New("period must have the format YYYY-MM")
	ErrInvalidState         = errors.New("invalid payroll state")
	ErrEmployeeNotFound     = errors.New("employee not found")
)

// TransitionError carries the state machine's denial reason. It surfaces as a
// 403 with the reason as the message.
type TransitionError struct {
	Reason string
}

func (e *TransitionError) Error() string {
	return e.Reason
}
