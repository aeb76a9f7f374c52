package worksite

import (
	"context"
)

type WorksiteRepository interface {
	Create(ctx context.Context, w Worksite) (Worksite, error)
	GetByID(ctx context.Context, id string) (Worksite, error)
	List(ctx context.Context, filter Filter) ([]Worksite, int64, error)
	Update(ctx context.Context, w Worksite) error
	Delete(ctx context.Context, id string) error
}
