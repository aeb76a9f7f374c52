package material

import (
	"context"
)

type MaterialService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
	ListLowStock(ctx context.Context) ([]Response, error)
	Update(ctx context.Context, req UpdateRequest) (Response, error)
	Delete(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)

	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error)
	ListSuppliers(ctx context.Context) ([]SupplierResponse, error)
}
