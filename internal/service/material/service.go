package material

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestionobras/obras-backend-go/internal/domain/material"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type MaterialServiceImpl struct {
	materialRepo material.MaterialRepository
	userRepo     user.UserRepository
}

func NewMaterialService(materialRepo material.MaterialRepository, userRepo user.UserRepository) material.MaterialService {
	return &MaterialServiceImpl{
		materialRepo: materialRepo,
		userRepo:     userRepo,
	}
}

func (s *MaterialServiceImpl) actorFromContext(ctx context.Context) (user.User, error) {
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

func (s *MaterialServiceImpl) requireManage(ctx context.Context) error {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.Allowed(actor, user.PermissionManageMaterials) {
		return user.ErrInsufficientPermissions
	}
	return nil
}

func (s *MaterialServiceImpl) Create(ctx context.Context, req material.CreateRequest) (material.Response, error) {
	if err := req.Validate(); err != nil {
		return material.Response{}, err
	}
	if err := s.requireManage(ctx); err != nil {
		return material.Response{}, err
	}

	if _, err := s.materialRepo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		return material.Response{}, err
	}
	if req.SupplierID != nil {
		if _, err := s.materialRepo.GetSupplierByID(ctx, *req.SupplierID); err != nil {
			return material.Response{}, err
		}
	}
	if _, err := s.materialRepo.GetByCode(ctx, req.Code); err == nil {
		return material.Response{}, material.ErrCodeExists
	} else if !errors.Is(err, material.ErrMaterialNotFound) {
		return material.Response{}, err
	}

	created, err := s.materialRepo.Create(ctx, material.Material{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		UnitPrice:    req.UnitPrice,
		MinimumStock: req.MinimumStock,
		Location:     req.Location,
		SupplierID:   req.SupplierID,
		Active:       true,
	})
	if err != nil {
		return material.Response{}, err
	}

	return material.ToResponse(created), nil
}

func (s *MaterialServiceImpl) Get(ctx context.Context, id string) (material.Response, error) {
	if _, err := s.actorFromContext(ctx); err != nil {
		return material.Response{}, err
	}

	m, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return material.Response{}, err
	}
	return material.ToResponse(m), nil
}

func (s *MaterialServiceImpl) List(ctx context.Context, filter material.Filter) (material.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return material.ListResponse{}, err
	}
	if _, err := s.actorFromContext(ctx); err != nil {
		return material.ListResponse{}, err
	}

	materials, total, err := s.materialRepo.List(ctx, filter)
	if err != nil {
		return material.ListResponse{}, err
	}

	resp := material.ListResponse{
		Materials: make([]material.Response, 0, len(materials)),
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}
	for _, m := range materials {
		resp.Materials = append(resp.Materials, material.ToResponse(m))
	}
	return resp, nil
}

func (s *MaterialServiceImpl) ListLowStock(ctx context.Context) ([]material.Response, error) {
	if _, err := s.actorFromContext(ctx); err != nil {
		return nil, err
	}

	materials, err := s.materialRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]material.Response, 0, len(materials))
	for _, m := range materials {
		result = append(result, material.ToResponse(m))
	}
	return result, nil
}

func (s *MaterialServiceImpl) Update(ctx context.Context, req material.UpdateRequest) (material.Response, error) {
	if err := req.Validate(); err != nil {
		return material.Response{}, err
	}
	if err := s.requireManage(ctx); err != nil {
		return material.Response{}, err
	}

	m, err := s.materialRepo.GetByID(ctx, req.ID)
	if err != nil {
		return material.Response{}, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = req.Description
	}
	if req.CategoryID != nil {
		if _, err := s.materialRepo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			return material.Response{}, err
		}
		m.CategoryID = *req.CategoryID
	}
	if req.Quantity != nil {
		m.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		m.Unit = *req.Unit
	}
	if req.UnitPrice != nil {
		m.UnitPrice = *req.UnitPrice
	}
	if req.MinimumStock != nil {
		m.MinimumStock = *req.MinimumStock
	}
	if req.Location != nil {
		m.Location = req.Location
	}
	if req.SupplierID != nil {
		if _, err := s.materialRepo.GetSupplierByID(ctx, *req.SupplierID); err != nil {
			return material.Response{}, err
		}
		m.SupplierID = req.SupplierID
	}
	if req.Active != nil {
		m.Active = *req.Active
	}

	if err := s.materialRepo.Update(ctx, m); err != nil {
		return material.Response{}, err
	}
	return material.ToResponse(m), nil
}

func (s *MaterialServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.requireManage(ctx); err != nil {
		return err
	}

	if _, err := s.materialRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.materialRepo.Delete(ctx, id)
}

func (s *MaterialServiceImpl) CreateCategory(ctx context.Context, req material.CreateCategoryRequest) (material.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return material.CategoryResponse{}, err
	}
	if err := s.requireManage(ctx); err != nil {
		return material.CategoryResponse{}, err
	}

	seq, err := s.materialRepo.NextCategorySequence(ctx)
	if err != nil {
		return material.CategoryResponse{}, err
	}

	created, err := s.materialRepo.CreateCategory(ctx, material.Category{
		Code:         material.NextCategoryCode(seq),
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		Active:       true,
	})
	if err != nil {
		return material.CategoryResponse{}, err
	}

	return material.ToCategoryResponse(created), nil
}

func (s *MaterialServiceImpl) ListCategories(ctx context.Context) ([]material.CategoryResponse, error) {
	if _, err := s.actorFromContext(ctx); err != nil {
		return nil, err
	}

	categories, err := s.materialRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]material.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, material.ToCategoryResponse(c))
	}
	return result, nil
}

func (s *MaterialServiceImpl) CreateSupplier(ctx context.Context, req material.CreateSupplierRequest) (material.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return material.SupplierResponse{}, err
	}
	if err := s.requireManage(ctx); err != nil {
		return material.SupplierResponse{}, err
	}

	created, err := s.materialRepo.CreateSupplier(ctx, material.Supplier{
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Active:      true,
	})
	if err != nil {
		return material.SupplierResponse{}, err
	}

	return material.ToSupplierResponse(created), nil
}

func (s *MaterialServiceImpl) ListSuppliers(ctx context.Context) ([]material.SupplierResponse, error) {
	if _, err := s.actorFromContext(ctx); err != nil {
		return nil, err
	}

	suppliers, err := s.materialRepo.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]material.SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		result = append(result, material.ToSupplierResponse(sup))
	}
	return result, nil
}
