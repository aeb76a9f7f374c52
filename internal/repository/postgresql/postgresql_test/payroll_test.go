package postgresql_test

import (
	"context"
	"testing"

	"github.com/gestionobras/obras-backend-go/internal/domain/payroll"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(employeeID, period string) payroll.PayrollRecord {
	days := decimal.NewFromInt(20)
	base := decimal.NewFromInt(3000)
	overtime := decimal.NewFromInt(10)
	bonuses := decimal.NewFromInt(100)
	deductions := decimal.NewFromInt(50)
	overtimePay, total, _ := payroll.ComputeTotal(base, overtime, bonuses, deductions)

	return payroll.PayrollRecord{
		EmployeeID:    employeeID,
		Period:        period,
		DaysWorked:    days,
		BaseSalary:    base,
		OvertimeHours: overtime,
		Bonuses:       bonuses,
		Deductions:    deductions,
		OvertimePay:   overtimePay,
		Total:         total,
		State:         payroll.StatePending,
	}
}

func TestPayrollRepository_CreateAndGet(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	userRepo := postgresql.NewUserRepository(setup.DB)
	repo := postgresql.NewPayrollRepository(setup.DB)

	employee, err := userRepo.Create(ctx, newTestUser("worker1", user.RoleWorker))
	require.NoError(t, err)

	created, err := repo.Create(ctx, newTestRecord(employee.ID, "2026-03"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, payroll.StatePending, created.State)
	assert.True(t, created.Total.Equal(decimal.RequireFromString("3237.50")))
	require.NotNil(t, created.EmployeeName)
	assert.Equal(t, "Test User", *created.EmployeeName)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "2026-03", got.Period)
}

func TestPayrollRepository_Create_DuplicatePeriod(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	userRepo := postgresql.NewUserRepository(setup.DB)
	repo := postgresql.NewPayrollRepository(setup.DB)

	employee, err := userRepo.Create(ctx, newTestUser("worker1", user.RoleWorker))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestRecord(employee.ID, "2026-03"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestRecord(employee.ID, "2026-03"))
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)

	exists, err := repo.ExistsByEmployeePeriod(ctx, employee.ID, "2026-03")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPayrollRepository_UpdateState(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	userRepo := postgresql.NewUserRepository(setup.DB)
	repo := postgresql.NewPayrollRepository(setup.DB)

	employee, err := userRepo.Create(ctx, newTestUser("worker1", user.RoleWorker))
	require.NoError(t, err)
	manager, err := userRepo.Create(ctx, newTestUser("super1", user.RoleSupervisor))
	require.NoError(t, err)

	created, err := repo.Create(ctx, newTestRecord(employee.ID, "2026-03"))
	require.NoError(t, err)

	paid, err := repo.UpdateState(ctx, created.ID, payroll.StatePaid, manager.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatePaid, paid.State)
	require.NotNil(t, paid.LastModifiedByID)
	assert.Equal(t, manager.ID, *paid.LastModifiedByID)
	require.NotNil(t, paid.LastModifiedByName)
	assert.Equal(t, "Test User", *paid.LastModifiedByName)
}

func TestPayrollRepository_List_Filters(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	userRepo := postgresql.NewUserRepository(setup.DB)
	repo := postgresql.NewPayrollRepository(setup.DB)

	worker1, err := userRepo.Create(ctx, newTestUser("worker1", user.RoleWorker))
	require.NoError(t, err)
	worker2, err := userRepo.Create(ctx, newTestUser("worker2", user.RoleWorker))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestRecord(worker1.ID, "2026-02"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestRecord(worker1.ID, "2026-03"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestRecord(worker2.ID, "2026-03"))
	require.NoError(t, err)

	period := "2026-03"
	records, total, err := repo.List(ctx, payroll.PayrollFilter{Period: &period, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, records, 2)

	records, total, err = repo.List(ctx, payroll.PayrollFilter{EmployeeID: &worker1.ID, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, records, 2)

	records, total, err = repo.List(ctx, payroll.PayrollFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, records, 2)
}

func TestPayrollRepository_Delete(t *testing.T) {
	setup := requireTestDB(t)
	ctx := context.Background()
	cleanTables(t, ctx)

	userRepo := postgresql.NewUserRepository(setup.DB)
	repo := postgresql.NewPayrollRepository(setup.DB)

	employee, err := userRepo.Create(ctx, newTestUser("worker1", user.RoleWorker))
	require.NoError(t, err)

	created, err := repo.Create(ctx, newTestRecord(employee.ID, "2026-03"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}
