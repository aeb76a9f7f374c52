package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/gestionobras/obras-backend-go/internal/pkg/database"
)

// TestDatabaseSetup wraps the connection used by the repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to the database named by TEST_DATABASE_URL.
func NewTestDatabase() (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables clears every table touched by the repository tests.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"attendance_records",
		"payroll_records",
		"materials",
		"material_categories",
		"suppliers",
		"worksites",
		"projects",
		"users",
	}

	for _, table := range tables {
		if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
