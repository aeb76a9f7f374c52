package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation, "YYYY-MM-DD"
func IsValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}

// Period validation, "YYYY-MM" payroll periods
func IsValidPeriod(period string) bool {
	_, err := time.Parse("2006-01", period)
	return err == nil
}

// DaysInPeriod returns the number of calendar days in a "YYYY-MM" period.
// The zero value is returned for an unparseable period.
func DaysInPeriod(period string) int {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return 0
	}
	// Day 0 of the next month is the last day of this month.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Phone number validation
func IsValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	if len(phone) < 7 || len(phone) > 15 {
		return false
	}
	if strings.HasPrefix(phone, "+") {
		phone = phone[1:]
	}
	return IsNumeric(phone)
}

// IsInSlice checks if a string is in a slice
func IsInSlice(s string, slice []string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
