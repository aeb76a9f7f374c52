package material

import (
	"time"

	"github.com/gestionobras/obras-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	CategoryID   string          `json:"category_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         Unit            `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	Location     *string         `json:"location"`
	SupplierID   *string         `json:"supplier_id"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if len(r.Code) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must not exceed 50 characters",
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

	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required",
		})
	}

	if r.Quantity.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}

	if !r.Unit.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit is not a recognized measurement unit",
		})
	}

	if r.UnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_price",
			Message: "unit_price must not be negative",
		})
	}

	if r.MinimumStock.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "minimum_stock",
			Message: "minimum_stock must not be negative",
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
	CategoryID   *string          `json:"category_id"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         *Unit            `json:"unit"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	MinimumStock *decimal.Decimal `json:"minimum_stock"`
	Location     *string          `json:"location"`
	SupplierID   *string          `json:"supplier_id"`
	Active       *bool            `json:"active"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Quantity != nil && r.Quantity.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}

	if r.Unit != nil && !r.Unit.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit is not a recognized measurement unit",
		})
	}

	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_price",
			Message: "unit_price must not be negative",
		})
	}

	if r.MinimumStock != nil && r.MinimumStock.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "minimum_stock",
			Message: "minimum_stock must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	CategoryID *string
	SupplierID *string
	Search     *string
	LowStock   *bool
	Active     *bool
	Page       int
	PageSize   int
}

func (f *Filter) Validate() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}
	return nil
}

type Response struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	CategoryID   string          `json:"category_id"`
	CategoryName *string         `json:"category_name,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         Unit            `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	StockValue   decimal.Decimal `json:"stock_value"`
	LowStock     bool            `json:"low_stock"`
	Location     *string         `json:"location"`
	SupplierID   *string         `json:"supplier_id"`
	SupplierName *string         `json:"supplier_name,omitempty"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToResponse(m Material) Response {
	return Response{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		Description:  m.Description,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		Quantity:     m.Quantity,
		Unit:         m.Unit,
		UnitPrice:    m.UnitPrice,
		MinimumStock: m.MinimumStock,
		StockValue:   m.StockValue(),
		LowStock:     m.LowStock(),
		Location:     m.Location,
		SupplierID:   m.SupplierID,
		SupplierName: m.SupplierName,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type ListResponse struct {
	Materials []Response `json:"materials"`
	Total     int64      `json:"total"`
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
}

type CreateCategoryRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CategoryResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
	Active       bool    `json:"active"`
}

func ToCategoryResponse(c Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Code:         c.Code,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		Active:       c.Active,
	}
}

type CreateSupplierRequest struct {
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
}

func (r *CreateSupplierRequest) Validate() error {
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

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SupplierResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Active      bool    `json:"active"`
}

func ToSupplierResponse(s Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		Active:      s.Active,
	}
}
