package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, record Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	// Exists reports whether a record already exists for (user, date, kind).
	// Used to reject double punches before hitting the unique index.
	Exists(ctx context.Context, userID string, date time.Time, kind Kind) (bool, error)

	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// ListByUser retrieves one user's records within the filter's date range.
	// A non-positive PageSize disables paging and returns every matching row,
	// ordered by date then time. Used for both listings and day summaries.
	ListByUser(ctx context.Context, userID string, filter MyFilter) ([]Record, int64, error)

	Update(ctx context.Context, record Record) error

	Delete(ctx context.Context, id string) error
}
