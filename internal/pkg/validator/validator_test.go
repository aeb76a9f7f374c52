package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.example.org", "a+tag@example.co"}
	for _, s := range valid {
		assert.True(t, IsValidEmail(s), s)
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user@example"}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), s)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0123456789"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a"))
	assert.False(t, IsNumeric("1.5"))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2026-03-15"))
	assert.True(t, IsValidDate("2024-02-29"))

	assert.False(t, IsValidDate("2025-02-29"))
	assert.False(t, IsValidDate("2026-13-01"))
	assert.False(t, IsValidDate("15-03-2026"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidPeriod(t *testing.T) {
	assert.True(t, IsValidPeriod("2026-03"))
	assert.True(t, IsValidPeriod("1999-12"))

	assert.False(t, IsValidPeriod("2026-13"))
	assert.False(t, IsValidPeriod("2026-3"))
	assert.False(t, IsValidPeriod("2026-03-01"))
	assert.False(t, IsValidPeriod(""))
}

func TestDaysInPeriod(t *testing.T) {
	tests := []struct {
		period string
		days   int
	}{
		{"2026-01", 31},
		{"2026-04", 30},
		{"2025-02", 28},
		{"2024-02", 29},
		{"2000-02", 29},
		{"1900-02", 28},
		{"bogus", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.days, DaysInPeriod(tt.period), tt.period)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("5551234567"))
	assert.True(t, IsValidPhoneNumber("+34 600 123 456"))
	assert.True(t, IsValidPhoneNumber("555-123-4567"))

	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("555123456789012345"))
	assert.False(t, IsValidPhoneNumber("555-ABC-1234"))
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"architect", "supervisor", "worker"}
	assert.True(t, IsInSlice("worker", roles))
	assert.False(t, IsInSlice("admin", roles))
	assert.False(t, IsInSlice("worker", nil))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "period", Message: "must have the format YYYY-MM"},
		{Field: "days_worked", Message: "must be greater than zero"},
	}
	assert.Equal(t, "period: must have the format YYYY-MM; days_worked: must be greater than zero", errs.Error())
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "period", Message: "must have the format YYYY-MM"},
		{Field: "days_worked", Message: "must be greater than zero"},
	}
	got := errs.ToMap()
	assert.Len(t, got, 2)
	assert.Equal(t, "must be greater than zero", got["days_worked"])
}
