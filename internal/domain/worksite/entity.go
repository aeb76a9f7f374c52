package worksite

import (
	"time"

	"github.com/shopspring/decimal"
)

type State string

const (
	StatePlanning   State = "planning"
	StateInProgress State = "in_progress"
	StateSuspended  State = "suspended"
	StateCompleted  State = "completed"
)

func (s State) Valid() bool {
	switch s {
	case StatePlanning, StateInProgress, StateSuspended, StateCompleted:
		return true
	}
	return false
}

// Worksite is a physical site within a project, run by a supervisor under
// the direction of an architect.
type Worksite struct {
	ID           string
	ProjectID    string
	Name         string
	Description  *string
	Address      string
	SupervisorID *string
	ArchitectID  *string
	State        State
	StartDate    time.Time
	EndDate      *time.Time
	Budget       decimal.Decimal
	Progress     int
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	ProjectName    *string
	SupervisorName *string
	ArchitectName  *string
}
