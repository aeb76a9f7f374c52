package worksite

import "errors"

var (
	ErrWorksiteNotFound = errors.New("worksite not found")
	ErrInvalidState     = errors.New("invalid worksite state")
	ErrInvalidDates     = errors.New("end date must not be before start date")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
	ErrSupervisorRole   = errors.New("assigned supervisor must have the supervisor role")
	ErrArchitectRole    = errors.New("assigned architect must have the architect role")
	ErrProjectNotFound  = errors.New("project not found")
)
