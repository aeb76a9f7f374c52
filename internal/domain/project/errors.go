package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNameExists      = errors.New("a project with this name already exists")
	ErrInvalidState    = errors.New("invalid project state")
	ErrInvalidDates    = errors.New("end date must not be before start date")
)
