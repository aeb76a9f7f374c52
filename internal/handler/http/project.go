package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestionobras/obras-backend-go/internal/domain/project"
	"github.com/gestionobras/obras-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{projectService: projectService}
}

func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created", result)
}

func (h *projectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter project.Filter
	if state := q.Get("state"); state != "" {
		s := project.State(state)
		filter.State = &s
	}
	if active := q.Get("active"); active != "" {
		b := active == "true"
		filter.Active = &b
	}
	if search := q.Get("search"); search != "" {
		filter.Search = &search
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	result, err := h.projectService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *projectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req project.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.projectService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *projectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted", nil)
}
