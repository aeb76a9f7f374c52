package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type State string

const (
	StatePlanned    State = "planned"
	StateInProgress State = "in_progress"
	StateSuspended  State = "suspended"
	StateCompleted  State = "completed"
	StateCancelled  State = "cancelled"
)

func (s State) Valid() bool {
	switch s {
	case StatePlanned, StateInProgress, StateSuspended, StateCompleted, StateCancelled:
		return true
	}
	return false
}

type Project struct {
	ID            string
	Name          string
	Description   *string
	StartDate     time.Time
	EndDate       *time.Time
	State         State
	Budget        decimal.Decimal
	ResponsibleID *string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	ResponsibleName *string
}
