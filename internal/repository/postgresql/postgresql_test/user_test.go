package postgresql_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSetup *TestDatabaseSetup

func requireTestDB(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	if testSetup == nil {
		setup, err := NewTestDatabase()
		require.NoError(t, err)
		testSetup = setup
	}
	if testSetup == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	return testSetup
}

func cleanTables(t *testing.T, ctx context.Context) {
	t.Helper()
	require.NoError(t, requireTestDB(t).TruncateAllTables(ctx))
}

func newTestUser(username string, role user.Role) user.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashedStr := string(hashed)
	return user.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: &hashedStr,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		Phone:        "555-0100",
		Active:       true,
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	repo := postgresql.NewUserRepository(setup.DB)

	created, err := repo.Create(ctx, newTestUser("mgarcia", user.RoleWorker))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "mgarcia", created.Username)
	assert.Equal(t, user.RoleWorker, created.Role)
	assert.True(t, created.Active)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, byID.Username)

	byUsername, err := repo.GetByUsername(ctx, "mgarcia")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	byEmail, err := repo.GetByEmail(ctx, "mgarcia@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	repo := postgresql.NewUserRepository(setup.DB)

	_, err := repo.Create(ctx, newTestUser("jlopez", user.RoleWorker))
	require.NoError(t, err)

	dup := newTestUser("jlopez", user.RoleWorker)
	dup.Email = "other@example.com"
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	repo := postgresql.NewUserRepository(setup.DB)

	_, err := repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_UpdateRole_ReplacesGrants(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	repo := postgresql.NewUserRepository(setup.DB)

	created, err := repo.Create(ctx, newTestUser("rsanchez", user.RoleWorker))
	require.NoError(t, err)

	err = repo.UpdateRole(ctx, created.ID, user.RoleWorker, []user.Permission{user.PermissionCancelPayroll})
	require.NoError(t, err)

	granted, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, granted.ExtraPermissions, user.PermissionCancelPayroll)

	// Promoting wipes the individual grants.
	err = repo.UpdateRole(ctx, created.ID, user.RoleSupervisor, nil)
	require.NoError(t, err)

	promoted, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleSupervisor, promoted.Role)
	assert.Empty(t, promoted.ExtraPermissions)
}

func TestUserRepository_List_FilterByRole(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	repo := postgresql.NewUserRepository(setup.DB)

	_, err := repo.Create(ctx, newTestUser("worker1", user.RoleWorker))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestUser("worker2", user.RoleWorker))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestUser("super1", user.RoleSupervisor))
	require.NoError(t, err)

	role := string(user.RoleWorker)
	workers, err := repo.List(ctx, user.ListUsersFilter{Role: &role})
	require.NoError(t, err)
	assert.Len(t, workers, 2)

	all, err := repo.List(ctx, user.ListUsersFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUserRepository_Update_Deactivate(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	repo := postgresql.NewUserRepository(setup.DB)

	created, err := repo.Create(ctx, newTestUser("pgomez", user.RoleWorker))
	require.NoError(t, err)

	created.Active = false
	created.Phone = "555-0199"
	require.NoError(t, repo.Update(ctx, created))

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "555-0199", updated.Phone)
}
