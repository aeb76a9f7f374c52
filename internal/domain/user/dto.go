package user

import (
	"github.com/gestionobras/obras-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	Phone     string  `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	HireDate  *string `json:"hire_date,omitempty"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	Phone     string  `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	HireDate  *string `json:"hire_date,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "invalid role",
		})
	}

	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if r.HireDate != nil {
		if !validator.IsValidDate(*r.HireDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents request to update user profile fields
type UpdateUserRequest struct {
	ID        string  `json:"-"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AssignRoleRequest represents request to change a user's role
type AssignRoleRequest struct {
	UserID string `json:"-"`
	Role   string `json:"role"`
}

func (r *AssignRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user id is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListUsersFilter narrows user listings
type ListUsersFilter struct {
	Role       *string `json:"role,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	ActiveOnly bool    `json:"-"`
}

func ToResponse(u User) UserResponse {
	var hireDate *string
	if u.HireDate != nil {
		str := u.HireDate.Format("2006-01-02")
		hireDate = &str
	}

	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Role:      string(u.Role),
		Phone:     u.Phone,
		Address:   u.Address,
		HireDate:  hireDate,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: u.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
