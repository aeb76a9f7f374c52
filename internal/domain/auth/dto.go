package auth

import (
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}

	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password is required",
		})
	} else if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters long",
		})
	} else if len(r.NewPassword) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.ConfirmPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password is required",
		})
	} else if r.ConfirmPassword != r.NewPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "new_password and confirm_password do not match",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string            `json:"access_token"`
	RefreshToken          string            `json:"refresh_token"`
	RefreshTokenExpiresIn int64             `json:"refresh_token_expires_in"`
	User                  user.UserResponse `json:"user"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}
