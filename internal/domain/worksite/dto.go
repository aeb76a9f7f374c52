package worksite

import (
	"time"

	"github.com/gestionobras/obras-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	ProjectID    string          `json:"project_id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Address      string          `json:"address"`
	SupervisorID *string         `json:"supervisor_id"`
	ArchitectID  *string         `json:"architect_id"`
	State        State           `json:"state"`
	StartDate    string          `json:"start_date"`
	EndDate      *string         `json:"end_date"`
	Budget       decimal.Decimal `json:"budget"`
	Notes        *string         `json:"notes"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 200 characters",
		})
	}

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate != nil {
		if !validator.IsValidDate(*r.EndDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if validator.IsValidDate(r.StartDate) && *r.EndDate < r.StartDate {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if r.State == "" {
		r.State = StatePlanning
	} else if !r.State.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of planning, in_progress, suspended, completed",
		})
	}

	if r.Budget.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "budget",
			Message: "budget must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Address      *string          `json:"address"`
	SupervisorID *string          `json:"supervisor_id"`
	ArchitectID  *string          `json:"architect_id"`
	State        *State           `json:"state"`
	StartDate    *string          `json:"start_date"`
	EndDate      *string          `json:"end_date"`
	Budget       *decimal.Decimal `json:"budget"`
	Progress     *int             `json:"progress"`
	Notes        *string          `json:"notes"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Address != nil && validator.IsEmpty(*r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not be empty",
		})
	}

	if r.StartDate != nil && !validator.IsValidDate(*r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate != nil && !validator.IsValidDate(*r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if r.State != nil && !r.State.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of planning, in_progress, suspended, completed",
		})
	}

	if r.Budget != nil && r.Budget.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "budget",
			Message: "budget must not be negative",
		})
	}

	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	ProjectID    *string
	State        *State
	SupervisorID *string
	Page         int
	PageSize     int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.State != nil && !f.State.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of planning, in_progress, suspended, completed",
		})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	ProjectName    *string         `json:"project_name,omitempty"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	Address        string          `json:"address"`
	SupervisorID   *string         `json:"supervisor_id"`
	SupervisorName *string         `json:"supervisor_name,omitempty"`
	ArchitectID    *string         `json:"architect_id"`
	ArchitectName  *string         `json:"architect_name,omitempty"`
	State          State           `json:"state"`
	StartDate      string          `json:"start_date"`
	EndDate        *string         `json:"end_date"`
	Budget         decimal.Decimal `json:"budget"`
	Progress       int             `json:"progress"`
	Notes          *string         `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func ToResponse(w Worksite) Response {
	resp := Response{
		ID:             w.ID,
		ProjectID:      w.ProjectID,
		ProjectName:    w.ProjectName,
		Name:           w.Name,
		Description:    w.Description,
		Address:        w.Address,
		SupervisorID:   w.SupervisorID,
		SupervisorName: w.SupervisorName,
		ArchitectID:    w.ArchitectID,
		ArchitectName:  w.ArchitectName,
		State:          w.State,
		StartDate:      w.StartDate.Format("2006-01-02"),
		Budget:         w.Budget,
		Progress:       w.Progress,
		Notes:          w.Notes,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
	if w.EndDate != nil {
		s := w.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	return resp
}

type ListResponse struct {
	Worksites []Response `json:"worksites"`
	Total     int64      `json:"total"`
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
}
