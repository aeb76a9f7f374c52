package material

import "errors"

var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrCategoryNotFound = errors.New("material category not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrCodeExists       = errors.New("a material with this code already exists")
	ErrInvalidUnit      = errors.New("invalid measurement unit")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)
