package project

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionobras/obras-backend-go/internal/domain/project"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type ProjectServiceImpl struct {
	projectRepo project.ProjectRepository
	userRepo    user.UserRepository
}

func NewProjectService(projectRepo project.ProjectRepository, userRepo user.UserRepository) project.ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

func (s *ProjectServiceImpl) actorFromContext(ctx context.Context) (user.User, error) {
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

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateRequest) (project.Response, error) {
	if err := req.Validate(); err != nil {
		return project.Response{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return project.Response{}, err
	}
	if !user.Allowed(actor, user.PermissionManageProjects) {
		return project.Response{}, user.ErrInsufficientPermissions
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return project.Response{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	var endDate *time.Time
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return project.Response{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		endDate = &d
	}

	if req.ResponsibleID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.ResponsibleID); err != nil {
			return project.Response{}, err
		}
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     startDate,
		EndDate:       endDate,
		State:         req.State,
		Budget:        req.Budget,
		ResponsibleID: req.ResponsibleID,
		Active:        true,
	})
	if err != nil {
		return project.Response{}, err
	}

	return project.ToResponse(created), nil
}

func (s *ProjectServiceImpl) Get(ctx context.Context, id string) (project.Response, error) {
	if _, err := s.actorFromContext(ctx); err != nil {
		return project.Response{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.Response{}, err
	}
	return project.ToResponse(p), nil
}

func (s *ProjectServiceImpl) List(ctx context.Context, filter project.Filter) (project.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return project.ListResponse{}, err
	}
	if _, err := s.actorFromContext(ctx); err != nil {
		return project.ListResponse{}, err
	}

	projects, total, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return project.ListResponse{}, err
	}

	resp := project.ListResponse{
		Projects: make([]project.Response, 0, len(projects)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, project.ToResponse(p))
	}
	return resp, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, req project.UpdateRequest) (project.Response, error) {
	if err := req.Validate(); err != nil {
		return project.Response{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return project.Response{}, err
	}
	if !user.Allowed(actor, user.PermissionManageProjects) {
		return project.Response{}, user.ErrInsufficientPermissions
	}

	p, err := s.projectRepo.GetByID(ctx, req.ID)
	if err != nil {
		return project.Response{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			return project.Response{}, fmt.Errorf("failed to parse start_date: %w", err)
		}
		p.StartDate = d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return project.Response{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		p.EndDate = &d
	}
	if req.State != nil {
		p.State = *req.State
	}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if req.ResponsibleID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.ResponsibleID); err != nil {
			return project.Response{}, err
		}
		p.ResponsibleID = req.ResponsibleID
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return project.Response{}, project.ErrInvalidDates
	}

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return project.Response{}, err
	}
	return project.ToResponse(p), nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.Allowed(actor, user.PermissionManageProjects) {
		return user.ErrInsufficientPermissions
	}

	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}
