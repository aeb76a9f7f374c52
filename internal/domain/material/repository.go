package material

import (
	"context"
)

type MaterialRepository interface {
	Create(ctx context.Context, m Material) (Material, error)
	GetByID(ctx context.Context, id string) (Material, error)
	GetByCode(ctx context.Context, code string) (Material, error)
	List(ctx context.Context, filter Filter) ([]Material, int64, error)
	// ListLowStock returns active materials whose quantity is at or below
	// their minimum stock.
	ListLowStock(ctx context.Context) ([]Material, error)
	Update(ctx context.Context, m Material) error
	Delete(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, c Category) (Category, error)
	GetCategoryByID(ctx context.Context, id string) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	UpdateCategory(ctx context.Context, c Category) error
	// NextCategorySequence returns the next value of the category code
	// sequence.
	NextCategorySequence(ctx context.Context) (int, error)

	CreateSupplier(ctx context.Context, s Supplier) (Supplier, error)
	GetSupplierByID(ctx context.Context, id string) (Supplier, error)
	ListSuppliers(ctx context.Context) ([]Supplier, error)
	UpdateSupplier(ctx context.Context, s Supplier) error
}
