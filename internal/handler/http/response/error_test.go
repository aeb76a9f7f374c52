package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestionobras/obras-backend-go/internal/domain/attendance"
	"github.com/gestionobras/obras-backend-go/internal/domain/auth"
	"github.com/gestionobras/obras-backend-go/internal/domain/payroll"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name: "field validation is a bad request",
			err: validator.ValidationErrors{
				{Field: "base_salary", Message: "must be greater than 0"},
			},
			status: http.StatusBadRequest,
			code:   "VALIDATION_ERROR",
		},
		{
			name:   "transition refusal is forbidden",
			err:    &payroll.TransitionError{Reason: "cannot modify a paid record"},
			status: http.StatusForbidden,
			code:   "FORBIDDEN",
		},
		{
			name:   "duplicate payroll period is a conflict",
			err:    payroll.ErrPayrollAlreadyExists,
			status: http.StatusConflict,
			code:   "CONFLICT",
		},
		{
			name:   "duplicate attendance punch is a conflict",
			err:    attendance.ErrDuplicateRecord,
			status: http.StatusConflict,
			code:   "CONFLICT",
		},
		{
			name:   "missing record is not found",
			err:    payroll.ErrPayrollNotFound,
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "missing permission is forbidden",
			err:    user.ErrInsufficientPermissions,
			status: http.StatusForbidden,
			code:   "FORBIDDEN",
		},
		{
			name:   "bad credentials are unauthorized",
			err:    auth.ErrInvalidCredentials,
			status: http.StatusUnauthorized,
			code:   "UNAUTHORIZED",
		},
		{
			name:   "unknown errors stay generic",
			err:    errors.New("pq: connection refused"),
			status: http.StatusInternalServerError,
			code:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)

			var body Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "period", Message: "must have the format YYYY-MM"},
		{Field: "days_worked", Message: "days worked exceeds days in month (28)"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "must have the format YYYY-MM", body.Error.Details["period"])
	assert.Equal(t, "days worked exceeds days in month (28)", body.Error.Details["days_worked"])
}

func TestHandleError_UnknownErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("dial tcp 10.0.0.5:5432: i/o timeout"))

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.NotContains(t, body.Error.Message, "10.0.0.5")
	assert.Equal(t, "An unexpected error occurred", body.Error.Message)
}
