package attendance

import (
	"time"

	"github.com/gestionobras/obras-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	UserID   string  `json:"-"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Kind     Kind    `json:"kind"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	} else if _, err := time.Parse("15:04", r.Time); err != nil {
		if _, err := time.Parse("15:04:05", r.Time); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "time",
				Message: "time must be in HH:MM format",
			})
		}
	}

	if !r.Kind.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be check_in or check_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID       string  `json:"-"`
	Time     *string `json:"time"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Time != nil {
		if _, err := time.Parse("15:04", *r.Time); err != nil {
			if _, err := time.Parse("15:04:05", *r.Time); err != nil {
				errs = append(errs, validator.ValidationError{
					Field:   "time",
					Message: "time must be in HH:MM format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	UserID   *string
	Kind     *Kind
	DateFrom *string
	DateTo   *string
	Page     int
	PageSize int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Kind != nil && !f.Kind.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be check_in or check_out",
		})
	}
	if f.DateFrom != nil && !validator.IsValidDate(*f.DateFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be in YYYY-MM-DD format",
		})
	}
	if f.DateTo != nil && !validator.IsValidDate(*f.DateTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be in YYYY-MM-DD format",
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

type MyFilter struct {
	DateFrom *string
	DateTo   *string
	Page     int
	PageSize int
}

func (f *MyFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.DateFrom != nil && !validator.IsValidDate(*f.DateFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be in YYYY-MM-DD format",
		})
	}
	if f.DateTo != nil && !validator.IsValidDate(*f.DateTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be in YYYY-MM-DD format",
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
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  *string   `json:"user_name,omitempty"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Kind      Kind      `json:"kind"`
	Location  *string   `json:"location"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(r Record) Response {
	return Response{
		ID:        r.ID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Date:      r.Date.Format("2006-01-02"),
		Time:      r.Time.Format("15:04:05"),
		Kind:      r.Kind,
		Location:  r.Location,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type ListResponse struct {
	Records  []Response `json:"records"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

type DaySummaryResponse struct {
	Date          string  `json:"date"`
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	WorkedMinutes *int    `json:"worked_minutes"`
}

type SummaryResponse struct {
	Days []DaySummaryResponse `json:"days"`
}

func ToSummaryResponse(days []DaySummary) SummaryResponse {
	out := SummaryResponse{Days: make([]DaySummaryResponse, 0, len(days))}
	for _, d := range days {
		resp := DaySummaryResponse{
			Date:          d.Date.Format("2006-01-02"),
			WorkedMinutes: d.WorkedMinutes,
		}
		if d.CheckIn != nil {
			s := d.CheckIn.Format("15:04:05")
			resp.CheckIn = &s
		}
		if d.CheckOut != nil {
			s := d.CheckOut.Format("15:04:05")
			resp.CheckOut = &s
		}
		out.Days = append(out.Days, resp)
	}
	return out
}
