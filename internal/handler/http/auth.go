package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestionobras/obras-backend-go/internal/domain/auth"
	"github.com/gestionobras/obras-backend-go/internal/handler/http/response"
	"github.com/gestionobras/obras-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{authService: authService, jwtService: jwtService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)

	slog.Info("User logged in", "username", loginReq.Username)
	response.Success(w, tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	// The service revokes by raw token, which only the request carries.
	ctx := context.WithValue(r.Context(), "raw_token", jwtauth.TokenFromHeader(r))

	if err := a.authService.Logout(ctx); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out", nil)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
		slog.Error("RefreshToken decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse)
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var changeReq auth.ChangePasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.ChangePassword(r.Context(), changeReq); err != nil {
		slog.Error("ChangePassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed", nil)
}
