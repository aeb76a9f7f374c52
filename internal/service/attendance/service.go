package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionobras/obras-backend-go/internal/domain/attendance"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

func (s *AttendanceServiceImpl) actorFromContext(ctx context.Context) (user.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.User{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	actor, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	if !actor.Active {
		return user.User{}, user.ErrUserInactive
	}
	return actor, nil
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to parse date: %w", err)
	}
	punchTime, err := time.Parse("15:04:05", req.Time)
	if err != nil {
		punchTime, err = time.Parse("15:04", req.Time)
		if err != nil {
			return attendance.Response{}, fmt.Errorf("failed to parse time: %w", err)
		}
	}

	// Punches are always recorded against the authenticated user.
	exists, err := s.attendanceRepo.Exists(ctx, actor.ID, date, req.Kind)
	if err != nil {
		return attendance.Response{}, err
	}
	if exists {
		return attendance.Response{}, attendance.ErrDuplicateRecord
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		UserID:   actor.ID,
		Date:     date,
		Time:     punchTime,
		Kind:     req.Kind,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		return attendance.Response{}, err
	}

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.Response, error) {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.Response{}, err
	}
	if !user.AllowedOnRecord(actor, record.UserID) {
		return attendance.Response{}, attendance.ErrUnauthorized
	}

	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return attendance.ListResponse{}, err
	}
	if !actor.IsArchitect() && !actor.IsSupervisor() {
		return attendance.ListResponse{}, user.ErrInsufficientPermissions
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	resp := attendance.ListResponse{
		Records:  make([]attendance.Response, 0, len(records)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for _, r := range records {
		resp.Records = append(resp.Records, attendance.ToResponse(r))
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) ListMine(ctx context.Context, filter attendance.MyFilter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.attendanceRepo.ListByUser(ctx, actor.ID, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	resp := attendance.ListResponse{
		Records:  make([]attendance.Response, 0, len(records)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for _, r := range records {
		resp.Records = append(resp.Records, attendance.ToResponse(r))
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) Summary(ctx context.Context, filter attendance.MyFilter) (attendance.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	// The summary pairs punches per day, so it needs every record in the
	// range. PageSize 0 disables paging in the repository.
	filter.Page = 0
	filter.PageSize = 0

	records, _, err := s.attendanceRepo.ListByUser(ctx, actor.ID, filter)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.ToSummaryResponse(attendance.Summarize(records)), nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Response{}, err
	}
	if !user.AllowedOnRecord(actor, record.UserID) {
		return attendance.Response{}, attendance.ErrUnauthorized
	}

	if req.Time != nil {
		punchTime, err := time.Parse("15:04:05", *req.Time)
		if err != nil {
			punchTime, err = time.Parse("15:04", *req.Time)
			if err != nil {
				return attendance.Response{}, fmt.Errorf("failed to parse time: %w", err)
			}
		}
		record.Time = punchTime
	}
	if req.Location != nil {
		record.Location = req.Location
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.Response{}, err
	}
	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return err
	}

	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.AllowedOnRecord(actor, record.UserID) {
		return attendance.ErrUnauthorized
	}

	return s.attendanceRepo.Delete(ctx, id)
}
