package payroll

import (
	"testing"

	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotal(t *testing.T) {
	// base=3000.00, overtime=10h -> hourly rate 12.50, overtime pay 187.50
	overtimePay, total, err := ComputeTotal(dec("3000.00"), dec("10"), dec("100"), dec("50"))
	require.NoError(t, err)
	assert.True(t, overtimePay.Equal(dec("187.50")), "overtime pay = %s", overtimePay)
	assert.True(t, total.Equal(dec("3237.50")), "total = %s", total)
}

func TestComputeTotal_NoOvertime(t *testing.T) {
	overtimePay, total, err := ComputeTotal(dec("1500"), decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, overtimePay.IsZero())
	assert.True(t, total.Equal(dec("1500")))
}

func TestComputeTotal_RoundsToTwoPlaces(t *testing.T) {
	// 1000/240 = 4.1666..., 7h * rate * 1.5 = 43.75
	overtimePay, total, err := ComputeTotal(dec("1000"), dec("7"), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "43.75", overtimePay.StringFixed(2))
	assert.Equal(t, "1043.75", total.StringFixed(2))

	// 1000/240 * 1 * 1.5 = 6.25; 1 cent inputs keep two places
	overtimePay, total, err = ComputeTotal(dec("1000"), dec("1"), dec("0.01"), dec("0.01"))
	require.NoError(t, err)
	assert.Equal(t, "6.25", overtimePay.StringFixed(2))
	assert.Equal(t, "1006.25", total.StringFixed(2))
}

func TestComputeTotal_NegativeInputs(t *testing.T) {
	cases := []struct {
		name                              string
		base, overtime, bonus, deductions decimal.Decimal
	}{
		{"negative base", dec("-1"), decimal.Zero, decimal.Zero, decimal.Zero},
		{"negative overtime", dec("1000"), dec("-1"), decimal.Zero, decimal.Zero},
		{"negative bonus", dec("1000"), decimal.Zero, dec("-0.01"), decimal.Zero},
		{"negative deductions", dec("1000"), decimal.Zero, decimal.Zero, dec("-5")},
	}
	for _, c := range cases {
		_, _, err := ComputeTotal(c.base, c.overtime, c.bonus, c.deductions)
		assert.ErrorIs(t, err, ErrNegativeAmount, c.name)
	}
}

func TestComputeTotal_NegativeTotal(t *testing.T) {
	_, _, err := ComputeTotal(dec("100"), decimal.Zero, decimal.Zero, dec("200"))
	assert.ErrorIs(t, err, ErrNegativeTotal)
}

func TestCanTransition(t *testing.T) {
	architect := user.User{ID: "a", Role: user.RoleArchitect}
	supervisor := user.User{ID: "s", Role: user.RoleSupervisor}
	worker := user.User{ID: "w", Role: user.RoleWorker}

	cases := []struct {
		name       string
		current    State
		requested  State
		actor      user.User
		want       bool
		wantReason string
	}{
		{"paid to pending", StatePaid, StatePending, architect, false, "cannot modify a paid record"},
		{"paid to cancelled", StatePaid, StateCancelled, architect, false, "cannot modify a paid record"},
		{"cancelled to pending", StateCancelled, StatePending, architect, false, "cannot modify a cancelled record"},
		{"cancelled to paid", StateCancelled, StatePaid, architect, false, "cannot modify a cancelled record"},
		{"cancelled to cancelled", StateCancelled, StateCancelled, architect, false, "cannot modify a cancelled record"},
		{"process by architect", StatePending, StatePaid, architect, true, ""},
		{"process by supervisor", StatePending, StatePaid, supervisor, true, ""},
		{"process by worker", StatePending, StatePaid, worker, false, "not authorized to process payroll"},
		{"cancel by architect", StatePending, StateCancelled, architect, true, ""},
		{"cancel by supervisor", StatePending, StateCancelled, supervisor, false, "not authorized to cancel payroll"},
		{"edit while pending", StatePending, StatePending, worker, true, ""},
	}
	for _, c := range cases {
		ok, reason := CanTransition(c.current, c.requested, c.actor)
		assert.Equal(t, c.want, ok, c.name)
		assert.Equal(t, c.wantReason, reason, c.name)
	}
}

func TestCanTransition_IndividualGrant(t *testing.T) {
	worker := user.User{ID: "w", Role: user.RoleWorker, ExtraPermissions: []user.Permission{user.PermissionCancelPayroll}}
	ok, reason := CanTransition(StatePending, StateCancelled, worker)
	assert.True(t, ok, reason)
}

func TestCreatePayrollRequestValidate(t *testing.T) {
	valid := CreatePayrollRequest{
		EmployeeID:    "emp-1",
		Period:        "2025-03",
		DaysWorked:    dec("20"),
		BaseSalary:    dec("3000"),
		OvertimeHours: dec("10"),
		Bonuses:       dec("100"),
		Deductions:    dec("50"),
	}
	require.NoError(t, valid.Validate())

	t.Run("days worked exceeds days in month", func(t *testing.T) {
		req := valid
		req.Period = "2025-01"
		req.DaysWorked = dec("32")
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "days worked exceeds days in month (31)")
	})

	t.Run("leap year february", func(t *testing.T) {
		req := valid
		req.Period = "2024-02"
		req.DaysWorked = dec("29")
		assert.NoError(t, req.Validate())

		req.Period = "2025-02"
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "days worked exceeds days in month (28)")
	})

	t.Run("overtime cap", func(t *testing.T) {
		req := valid
		req.DaysWorked = dec("20")
		req.OvertimeHours = dec("90") // cap is 80
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overtime cap exceeded")
	})

	t.Run("bad period format", func(t *testing.T) {
		req := valid
		req.Period = "03-2025"
		assert.Error(t, req.Validate())
	})

	t.Run("zero days worked", func(t *testing.T) {
		req := valid
		req.DaysWorked = decimal.Zero
		assert.Error(t, req.Validate())
	})

	t.Run("zero base salary", func(t *testing.T) {
		req := valid
		req.BaseSalary = decimal.Zero
		assert.Error(t, req.Validate())
	})
}
