package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateRecord    = errors.New("attendance record already exists for this user, date and kind")
	ErrInvalidKind        = errors.New("attendance kind must be check_in or check_out")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
