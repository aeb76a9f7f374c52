package user

import "context"

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	GetCurrent(ctx context.Context) (UserResponse, error)
	List(ctx context.Context, filter ListUsersFilter) ([]UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	AssignRole(ctx context.Context, req AssignRoleRequest) (UserResponse, error)
}
