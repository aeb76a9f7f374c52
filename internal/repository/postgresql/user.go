package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, role,
	   phone, address, hire_date, active, extra_permissions, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var extra []string
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.Phone,
		&u.Address,
		&u.HireDate,
		&u.Active,
		&extra,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	for _, p := range extra {
		u.ExtraPermissions = append(u.ExtraPermissions, user.Permission(p))
	}
	return u, nil
}

func permissionStrings(grants []user.Permission) []string {
	out := make([]string, 0, len(grants))
	for _, g := range grants {
		out = append(out, string(g))
	}
	return out
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			username, email, password_hash, first_name, last_name, role,
			phone, address, hire_date, active, extra_permissions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.Email,
		newUser.PasswordHash,
		newUser.FirstName,
		newUser.LastName,
		newUser.Role,
		newUser.Phone,
		newUser.Address,
		newUser.HireDate,
		newUser.Active,
		permissionStrings(newUser.ExtraPermissions),
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_users_username") {
			return user.User{}, user.ErrUsernameExists
		}
		if strings.Contains(err.Error(), "uk_users_email") {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	found, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	found, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Role != nil {
		query += fmt.Sprintf(" AND role = $%d", argPos)
		args = append(args, *filter.Role)
		argPos++
	}
	if filter.Active != nil {
		query += fmt.Sprintf(" AND active = $%d", argPos)
		args = append(args, *filter.Active)
		argPos++
	} else if filter.ActiveOnly {
		query += ` AND active = TRUE`
	}

	query += ` ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, phone = $3, address = $4,
		    active = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, u.FirstName, u.LastName, u.Phone, u.Address, u.Active, u.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdateRole implements user.UserRepository. Role and grants change in one
// statement so no grant from the previous role survives a partial failure.
func (r *userRepositoryImpl) UpdateRole(ctx context.Context, userID string, role user.Role, grants []user.Permission) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET role = $1, extra_permissions = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, role, permissionStrings(grants), userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
