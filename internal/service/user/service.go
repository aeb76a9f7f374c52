package user

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// actorFromContext loads the authenticated user from the JWT claims. The
// actor is always re-read from storage so permission checks see current
// role and grants, not the ones frozen into the token.
func (s *UserServiceImpl) actorFromContext(ctx context.Context) (user.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.User{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	actor, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	if !actor.Active {
		return user.User{}, user.ErrUserInactive
	}
	return actor, nil
}

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !user.Allowed(actor, user.PermissionManageUsers) {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}
	if err := user.CheckRoleAssignment(actor.Role, user.Role(req.Role)); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return user.UserResponse{}, user.ErrUsernameExists
	}
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	var hireDate *time.Time
	if req.HireDate != nil {
		d, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
		}
		hireDate = &d
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: &hashStr,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.Role(req.Role),
		Phone:        req.Phone,
		Address:      req.Address,
		HireDate:     hireDate,
		Active:       true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !user.AllowedOnRecord(actor, id) {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

func (s *UserServiceImpl) GetCurrent(ctx context.Context) (user.UserResponse, error) {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(actor), nil
}

func (s *UserServiceImpl) List(ctx context.Context, filter user.ListUsersFilter) ([]user.UserResponse, error) {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsArchitect() && !actor.IsSupervisor() {
		return nil, user.ErrInsufficientPermissions
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, user.ToResponse(u))
	}
	return result, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	// Contact fields may be edited by the owner; everything else needs the
	// user management permission.
	manager := user.Allowed(actor, user.PermissionManageUsers)
	if !manager && actor.ID != target.ID {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}

	if req.FirstName != nil {
		target.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		target.LastName = *req.LastName
	}
	if req.Phone != nil {
		target.Phone = *req.Phone
	}
	if req.Address != nil {
		target.Address = req.Address
	}
	if req.Active != nil {
		if !manager {
			return user.UserResponse{}, user.ErrInsufficientPermissions
		}
		target.Active = *req.Active
	}

	if err := s.userRepo.Update(ctx, target); err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(target), nil
}

func (s *UserServiceImpl) AssignRole(ctx context.Context, req user.AssignRoleRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !user.Allowed(actor, user.PermissionManageUsers) {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}
	if err := user.CheckRoleAssignment(actor.Role, user.Role(req.Role)); err != nil {
		return user.UserResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	// Role change wipes individual grants so the target holds exactly the
	// new role's permission set.
	if err := s.userRepo.UpdateRole(ctx, target.ID, user.Role(req.Role), nil); err != nil {
		return user.UserResponse{}, err
	}

	target.Role = user.Role(req.Role)
	target.ExtraPermissions = nil
	return user.ToResponse(target), nil
}
