package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestionobras/obras-backend-go/internal/domain/worksite"
	"github.com/gestionobras/obras-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorksiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type worksiteHandlerImpl struct {
	worksiteService worksite.WorksiteService
}

func NewWorksiteHandler(worksiteService worksite.WorksiteService) WorksiteHandler {
	return &worksiteHandlerImpl{worksiteService: worksiteService}
}

func (h *worksiteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worksite.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.worksiteService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worksite created", result)
}

func (h *worksiteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.worksiteService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *worksiteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter worksite.Filter
	if projectID := q.Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	if state := q.Get("state"); state != "" {
		s := worksite.State(state)
		filter.State = &s
	}
	if supervisorID := q.Get("supervisor_id"); supervisorID != "" {
		filter.SupervisorID = &supervisorID
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	result, err := h.worksiteService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *worksiteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req worksite.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.worksiteService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *worksiteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.worksiteService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worksite deleted", nil)
}
