package http

import (
	"encoding/json"
	"net/http"

	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetCurrent(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	AssignRole(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.userService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", result)
}

func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.userService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) GetCurrent(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.GetCurrent(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter user.ListUsersFilter
	if role := r.URL.Query().Get("role"); role != "" {
		filter.Role = &role
	}
	if active := r.URL.Query().Get("active"); active != "" {
		b := active == "true"
		filter.Active = &b
	}

	result, err := h.userService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.userService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *userHandlerImpl) AssignRole(w http.ResponseWriter, r *http.Request) {
	var req user.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	result, err := h.userService.AssignRole(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role assigned", result)
}
