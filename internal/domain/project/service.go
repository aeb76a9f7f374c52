package project

import (
	"context"
)

type ProjectService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
	Update(ctx context.Context, req UpdateRequest) (Response, error)
	Delete(ctx context.Context, id string) error
}
