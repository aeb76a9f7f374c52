package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestionobras/obras-backend-go/internal/domain/auth"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	// The login identifier may be a username or an email address.
	userData, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, pgx.ErrNoRows) {
			userData, err = a.userRepo.GetByEmail(ctx, req.Username)
		}
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, pgx.ErrNoRows) {
				return auth.TokenResponse{}, auth.ErrInvalidCredentials
			}
			return auth.TokenResponse{}, fmt.Errorf("failed to look up user: %w", err)
		}
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	accessToken, _, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		User:                  user.ToResponse(userData),
	}, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context) error {
	// The handler stashes the raw bearer token so it can be revoked here.
	rawToken, _ := ctx.Value("raw_token").(string)
	if rawToken == "" {
		return auth.ErrInvalidToken
	}
	a.jwtService.RevokeToken(rawToken)
	return nil
}

func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrTokenRevoked
	}

	token, err := a.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, err
	}
	if !userData.Active {
		return auth.AccessTokenResponse{}, auth.ErrUserInactive
	}

	accessToken, _, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{AccessToken: accessToken}, nil
}

func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if userData.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.userRepo.UpdatePassword(ctx, userID, string(hash))
}
