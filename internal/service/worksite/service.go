package worksite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gestionobras/obras-backend-go/internal/domain/project"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/domain/worksite"
	"github.com/go-chi/jwtauth/v5"
)

type WorksiteServiceImpl struct {
	worksiteRepo worksite.WorksiteRepository
	projectRepo  project.ProjectRepository
	userRepo     user.UserRepository
}

func NewWorksiteService(
	worksiteRepo worksite.WorksiteRepository,
	projectRepo project.ProjectRepository,
	userRepo user.UserRepository,
) worksite.WorksiteService {
	return &WorksiteServiceImpl{
		worksiteRepo: worksiteRepo,
		projectRepo:  projectRepo,
		userRepo:     userRepo,
	}
}

func (s *WorksiteServiceImpl) actorFromContext(ctx context.Context) (user.User, error) {
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

// checkAssignees verifies role constraints on the supervisor and architect
// assignments.
func (s *WorksiteServiceImpl) checkAssignees(ctx context.Context, supervisorID, architectID *string) error {
	if supervisorID != nil {
		u, err := s.userRepo.GetByID(ctx, *supervisorID)
		if err != nil {
			return err
		}
		if !u.IsSupervisor() {
			return worksite.ErrSupervisorRole
		}
	}
	if architectID != nil {
		u, err := s.userRepo.GetByID(ctx, *architectID)
		if err != nil {
			return err
		}
		if !u.IsArchitect() {
			return worksite.ErrArchitectRole
		}
	}
	return nil
}

func (s *WorksiteServiceImpl) Create(ctx context.Context, req worksite.CreateRequest) (worksite.Response, error) {
	if err := req.Validate(); err != nil {
		return worksite.Response{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return worksite.Response{}, err
	}
	if !user.Allowed(actor, user.PermissionManageProjects) {
		return worksite.Response{}, user.ErrInsufficientPermissions
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return worksite.Response{}, worksite.ErrProjectNotFound
		}
		return worksite.Response{}, err
	}

	if err := s.checkAssignees(ctx, req.SupervisorID, req.ArchitectID); err != nil {
		return worksite.Response{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return worksite.Response{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	var endDate *time.Time
	if req.EndDate != nil {
		d, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return worksite.Response{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		endDate = &d
	}

	created, err := s.worksiteRepo.Create(ctx, worksite.Worksite{
		ProjectID:    req.ProjectID,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		SupervisorID: req.SupervisorID,
		ArchitectID:  req.ArchitectID,
		State:        req.State,
		StartDate:    startDate,
		EndDate:      endDate,
		Budget:       req.Budget,
		Progress:     0,
		Notes:        req.Notes,
	})
	if err != nil {
		return worksite.Response{}, err
	}

	return worksite.ToResponse(created), nil
}

func (s *WorksiteServiceImpl) Get(ctx context.Context, id string) (worksite.Response, error) {
	if _, err := s.actorFromContext(ctx); err != nil {
		return worksite.Response{}, err
	}

	w, err := s.worksiteRepo.GetByID(ctx, id)
	if err != nil {
		return worksite.Response{}, err
	}
	return worksite.ToResponse(w), nil
}

func (s *WorksiteServiceImpl) List(ctx context.Context, filter worksite.Filter) (worksite.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return worksite.ListResponse{}, err
	}
	if _, err := s.actorFromContext(ctx); err != nil {
		return worksite.ListResponse{}, err
	}

	worksites, total, err := s.worksiteRepo.List(ctx, filter)
	if err != nil {
		return worksite.ListResponse{}, err
	}

	resp := worksite.ListResponse{
		Worksites: make([]worksite.Response, 0, len(worksites)),
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}
	for _, w := range worksites {
		resp.Worksites = append(resp.Worksites, worksite.ToResponse(w))
	}
	return resp, nil
}

func (s *WorksiteServiceImpl) Update(ctx context.Context, req worksite.UpdateRequest) (worksite.Response, error) {
	if err := req.Validate(); err != nil {
		return worksite.Response{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return worksite.Response{}, err
	}
	if !user.Allowed(actor, user.PermissionManageProjects) {
		return worksite.Response{}, user.ErrInsufficientPermissions
	}

	w, err := s.worksiteRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worksite.Response{}, err
	}

	if err := s.checkAssignees(ctx, req.SupervisorID, req.ArchitectID); err != nil {
		return worksite.Response{}, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Description != nil {
		w.Description = req.Description
	}
	if req.Address != nil {
		w.Address = *req.Address
	}
	if req.SupervisorID != nil {
		w.SupervisorID = req.SupervisorID
	}
	if req.ArchitectID != nil {
		w.ArchitectID = req.ArchitectID
	}
	if req.State != nil {
		w.State = *req.State
	}
	if req.StartDate != nil {
		d, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return worksite.Response{}, fmt.Errorf("failed to parse start_date: %w", err)
		}
		w.StartDate = d
	}
	if req.EndDate != nil {
		d, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return worksite.Response{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		w.EndDate = &d
	}
	if req.Budget != nil {
		w.Budget = *req.Budget
	}
	if req.Progress != nil {
		w.Progress = *req.Progress
	}
	if req.Notes != nil {
		w.Notes = req.Notes
	}

	if w.EndDate != nil && w.EndDate.Before(w.StartDate) {
		return worksite.Response{}, worksite.ErrInvalidDates
	}

	if err := s.worksiteRepo.Update(ctx, w); err != nil {
		return worksite.Response{}, err
	}
	return worksite.ToResponse(w), nil
}

func (s *WorksiteServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.Allowed(actor, user.PermissionManageProjects) {
		return user.ErrInsufficientPermissions
	}

	if _, err := s.worksiteRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.worksiteRepo.Delete(ctx, id)
}
