package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestionobras/obras-backend-go/internal/domain/material"
	"github.com/gestionobras/obras-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MaterialHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListLowStock(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	CreateSupplier(w http.ResponseWriter, r *http.Request)
	ListSuppliers(w http.ResponseWriter, r *http.Request)
}

type materialHandlerImpl struct {
	materialService material.MaterialService
}

func NewMaterialHandler(materialService material.MaterialService) MaterialHandler {
	return &materialHandlerImpl{materialService: materialService}
}

func (h *materialHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req material.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.materialService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Material created", result)
}

func (h *materialHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.materialService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *materialHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter material.Filter
	if categoryID := q.Get("category_id"); categoryID != "" {
		filter.CategoryID = &categoryID
	}
	if supplierID := q.Get("supplier_id"); supplierID != "" {
		filter.SupplierID = &supplierID
	}
	if search := q.Get("search"); search != "" {
		filter.Search = &search
	}
	if lowStock := q.Get("low_stock"); lowStock != "" {
		b := lowStock == "true"
		filter.LowStock = &b
	}
	if active := q.Get("active"); active != "" {
		b := active == "true"
		filter.Active = &b
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	result, err := h.materialService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *materialHandlerImpl) ListLowStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.materialService.ListLowStock(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *materialHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req material.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.materialService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *materialHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.materialService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Material deleted", nil)
}

func (h *materialHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req material.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.materialService.CreateCategory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Category created", result)
}

func (h *materialHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.materialService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *materialHandlerImpl) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req material.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.materialService.CreateSupplier(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Supplier created", result)
}

func (h *materialHandlerImpl) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.materialService.ListSuppliers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
