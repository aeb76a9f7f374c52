package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gestionobras/obras-backend-go/internal/domain/attendance"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID map[string]user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.byID[newUser.ID] = newUser
	return newUser, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }

func (r *fakeUserRepo) UpdateRole(ctx context.Context, userID string, role user.Role, grants []user.Permission) error {
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return nil
}

// fakeAttendanceRepo serves ListByUser from a slice, honoring PageSize the way
// the real repository does: a positive PageSize limits the page, zero or less
// returns everything.
type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) Exists(ctx context.Context, userID string, date time.Time, kind attendance.Kind) (bool, error) {
	return false, nil
}

func (r *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string, filter attendance.MyFilter) ([]attendance.Record, int64, error) {
	var matched []attendance.Record
	for _, rec := range r.records {
		if rec.UserID == userID {
			matched = append(matched, rec)
		}
	}
	total := int64(len(matched))
	if filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start > len(matched) {
			start = len(matched)
		}
		end := start + filter.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error {
	return nil
}

func (r *fakeAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

func contextForUser(t *testing.T, u user.User) context.Context {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	accessToken, _, err := jwtService.GenerateAccessToken(u.ID, u.Username, u.Role)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(accessToken)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// punchesForDays builds a check-in at 08:00 and a check-out at 17:30 for each
// of n consecutive days starting at 2026-03-01.
func punchesForDays(userID string, n int) []attendance.Record {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var records []attendance.Record
	for i := 0; i < n; i++ {
		date := start.AddDate(0, 0, i)
		records = append(records,
			attendance.Record{
				ID:     fmt.Sprintf("in-%d", i),
				UserID: userID,
				Date:   date,
				Time:   time.Date(date.Year(), date.Month(), date.Day(), 8, 0, 0, 0, time.UTC),
				Kind:   attendance.KindCheckIn,
			},
			attendance.Record{
				ID:     fmt.Sprintf("out-%d", i),
				UserID: userID,
				Date:   date,
				Time:   time.Date(date.Year(), date.Month(), date.Day(), 17, 30, 0, 0, time.UTC),
				Kind:   attendance.KindCheckOut,
			},
		)
	}
	return records
}

func TestSummary_CoversEveryDayInRange(t *testing.T) {
	worker := user.User{ID: "u1", Username: "worker1", Role: user.RoleWorker, Active: true}

	// 60 days of paired punches is more than any single page would hold.
	repo := &fakeAttendanceRepo{records: punchesForDays(worker.ID, 60)}
	svc := NewAttendanceService(repo, &fakeUserRepo{byID: map[string]user.User{worker.ID: worker}})

	resp, err := svc.Summary(contextForUser(t, worker), attendance.MyFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Days, 60)
	for _, day := range resp.Days {
		require.NotNil(t, day.WorkedMinutes, day.Date)
		assert.Equal(t, 570, *day.WorkedMinutes, day.Date)
	}
	assert.Equal(t, "2026-03-01", resp.Days[0].Date)
	assert.Equal(t, "2026-04-29", resp.Days[59].Date)
}

func TestSummary_OnlyOwnRecords(t *testing.T) {
	worker := user.User{ID: "u1", Username: "worker1", Role: user.RoleWorker, Active: true}

	records := punchesForDays(worker.ID, 2)
	records = append(records, punchesForDays("someone-else", 5)...)
	repo := &fakeAttendanceRepo{records: records}
	svc := NewAttendanceService(repo, &fakeUserRepo{byID: map[string]user.User{worker.ID: worker}})

	resp, err := svc.Summary(contextForUser(t, worker), attendance.MyFilter{})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 2)
}

func TestSummary_InactiveActor(t *testing.T) {
	worker := user.User{ID: "u1", Username: "worker1", Role: user.RoleWorker, Active: false}

	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeUserRepo{byID: map[string]user.User{worker.ID: worker}})

	_, err := svc.Summary(contextForUser(t, worker), attendance.MyFilter{})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}
