package project

import (
	"time"

	"github.com/gestionobras/obras-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	StartDate     string          `json:"start_date"`
	EndDate       *string         `json:"end_date"`
	State         State           `json:"state"`
	Budget        decimal.Decimal `json:"budget"`
	ResponsibleID *string         `json:"responsible_id"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

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
		r.State = StatePlanned
	} else if !r.State.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of planned, in_progress, suspended, completed, cancelled",
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
	ID            string           `json:"-"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	StartDate     *string          `json:"start_date"`
	EndDate       *string          `json:"end_date"`
	State         *State           `json:"state"`
	Budget        *decimal.Decimal `json:"budget"`
	ResponsibleID *string          `json:"responsible_id"`
	Active        *bool            `json:"active"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		} else if len(*r.Name) > 200 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 200 characters",
			})
		}
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
			Message: "state must be one of planned, in_progress, suspended, completed, cancelled",
		})
	}

	if r.Budget != nil && r.Budget.IsNegative() {
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

type Filter struct {
	State    *State
	Active   *bool
	Search   *string
	Page     int
	PageSize int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.State != nil && !f.State.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of planned, in_progress, suspended, completed, cancelled",
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
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	StartDate       string          `json:"start_date"`
	EndDate         *string         `json:"end_date"`
	State           State           `json:"state"`
	Budget          decimal.Decimal `json:"budget"`
	ResponsibleID   *string         `json:"responsible_id"`
	ResponsibleName *string         `json:"responsible_name,omitempty"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func ToResponse(p Project) Response {
	resp := Response{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		StartDate:       p.StartDate.Format("2006-01-02"),
		State:           p.State,
		Budget:          p.Budget,
		ResponsibleID:   p.ResponsibleID,
		ResponsibleName: p.ResponsibleName,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.EndDate != nil {
		s := p.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	return resp
}

type ListResponse struct {
	Projects []Response `json:"projects"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}
