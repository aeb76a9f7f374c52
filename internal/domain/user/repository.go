package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]User, error)
	Update(ctx context.Context, u User) error
	// UpdateRole sets the role and replaces the individual permission grants in
	// one statement so no grant from the previous role survives.
	UpdateRole(ctx context.Context, userID string, role Role, grants []Permission) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
