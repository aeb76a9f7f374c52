package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Create registers a punch for the authenticated user.
	Create(ctx context.Context, req CreateRequest) (Response, error)

	Get(ctx context.Context, id string) (Response, error)

	// List retrieves records across users (supervisor and architect only).
	List(ctx context.Context, filter Filter) (ListResponse, error)

	// ListMine retrieves the authenticated user's records.
	ListMine(ctx context.Context, filter MyFilter) (ListResponse, error)

	// Summary pairs the authenticated user's punches into per-day worked time.
	Summary(ctx context.Context, filter MyFilter) (SummaryResponse, error)

	Update(ctx context.Context, req UpdateRequest) (Response, error)

	Delete(ctx context.Context, id string) error
}
