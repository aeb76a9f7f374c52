package project

import (
	"context"
)

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, filter Filter) ([]Project, int64, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error
}
