package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already registered")
	ErrEmailExists             = errors.New("email already registered")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInsufficientRank        = errors.New("cannot assign a role above your own")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrUserInactive            = errors.New("user is inactive")
)
