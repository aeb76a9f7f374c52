package auth

import (
	"context"
	"testing"

	"github.com/gestionobras/obras-backend-go/internal/domain/auth"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type fakeUserRepo struct {
	byID map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	repo := &fakeUserRepo{byID: make(map[string]user.User)}
	for _, u := range users {
		repo.byID[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.byID[newUser.ID] = newUser
	return newUser, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, error) {
	var out []user.User
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, userID string, role user.Role, grants []user.Permission) error {
	u, ok := r.byID[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	u.ExtraPermissions = grants
	r.byID[userID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	u, ok := r.byID[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = &passwordHash
	r.byID[userID] = u
	return nil
}

func testUser(id, username, password string, active bool) user.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hashedStr := string(hashed)
	if id == "" {
		id = uuid.NewString()
	}
	return user.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: &hashedStr,
		FirstName:    "Test",
		LastName:     "User",
		Role:         user.RoleWorker,
		Active:       active,
	}
}

func newTestService(users ...user.User) (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(newFakeUserRepo(users...), jwtService), jwtService
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService(testUser("u1", "mgarcia", "password123", true))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mgarcia",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "mgarcia", resp.User.Username)
}

func TestLogin_WithEmail(t *testing.T) {
	svc, _ := newTestService(testUser("u1", "mgarcia", "password123", true))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mgarcia@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(testUser("u1", "mgarcia", "password123", true))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mgarcia",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "ghost",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, _ := newTestService(testUser("u1", "mgarcia", "password123", false))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mgarcia",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestRefreshToken_Success(t *testing.T) {
	svc, _ := newTestService(testUser("u1", "mgarcia", "password123", true))

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mgarcia",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(testUser("u1", "mgarcia", "password123", true))

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mgarcia",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_RevokedAfterLogout(t *testing.T) {
	svc, _ := newTestService(testUser("u1", "mgarcia", "password123", true))

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "mgarcia",
		Password: "password123",
	})
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), "raw_token", login.RefreshToken)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestChangePassword(t *testing.T) {
	svc, jwtService := newTestService(testUser("u1", "mgarcia", "password123", true))

	accessToken, _, err := jwtService.GenerateAccessToken("u1", "mgarcia", user.RoleWorker)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(accessToken)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	err = svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword456",
		ConfirmPassword: "newpassword456",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Username: "mgarcia",
		Password: "newpassword456",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Username: "mgarcia",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, jwtService := newTestService(testUser("u1", "mgarcia", "password123", true))

	accessToken, _, err := jwtService.GenerateAccessToken("u1", "mgarcia", user.RoleWorker)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(accessToken)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	err = svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword456",
		ConfirmPassword: "newpassword456",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
