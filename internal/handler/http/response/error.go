package response

import (
	"errors"
	"net/http"

	"github.com/gestionobras/obras-backend-go/internal/domain/attendance"
	"github.com/gestionobras/obras-backend-go/internal/domain/auth"
	"github.com/gestionobras/obras-backend-go/internal/domain/material"
	"github.com/gestionobras/obras-backend-go/internal/domain/payroll"
	"github.com/gestionobras/obras-backend-go/internal/domain/project"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/domain/worksite"
	"github.com/gestionobras/obras-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation failures carry their own detail map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// State machine refusals are authorization failures, not client mistakes
	var transitionErr *payroll.TransitionError
	if errors.As(err, &transitionErr) {
		Forbidden(w, transitionErr.Reason)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserInactive),
		errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrInsufficientRank),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "A payroll record already exists for this employee and period")
	case errors.Is(err, payroll.ErrNegativeAmount),
		errors.Is(err, payroll.ErrNegativeTotal),
		errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrInvalidState):
		BadRequest(w, err.Error(), nil)

	// Project and worksite domain errors
	case errors.Is(err, project.ErrProjectNotFound), errors.Is(err, worksite.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrNameExists):
		Conflict(w, "A project with this name already exists")
	case errors.Is(err, worksite.ErrWorksiteNotFound):
		NotFound(w, "Worksite not found")
	case errors.Is(err, project.ErrInvalidDates),
		errors.Is(err, worksite.ErrInvalidDates),
		errors.Is(err, worksite.ErrInvalidProgress):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worksite.ErrSupervisorRole),
		errors.Is(err, worksite.ErrArchitectRole):
		BadRequest(w, err.Error(), nil)

	// Material domain errors
	case errors.Is(err, material.ErrMaterialNotFound):
		NotFound(w, "Material not found")
	case errors.Is(err, material.ErrCategoryNotFound):
		NotFound(w, "Material category not found")
	case errors.Is(err, material.ErrSupplierNotFound):
		NotFound(w, "Supplier not found")
	case errors.Is(err, material.ErrCodeExists):
		Conflict(w, "Material code already in use")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
