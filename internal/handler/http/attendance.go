package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestionobras/obras-backend-go/internal/domain/attendance"
	"github.com/gestionobras/obras-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter attendance.Filter
	if userID := q.Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if kind := q.Get("kind"); kind != "" {
		k := attendance.Kind(kind)
		filter.Kind = &k
	}
	if from := q.Get("date_from"); from != "" {
		filter.DateFrom = &from
	}
	if to := q.Get("date_to"); to != "" {
		filter.DateTo = &to
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	filter := myFilterFromQuery(r)

	result, err := h.attendanceService.ListMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	filter := myFilterFromQuery(r)

	result, err := h.attendanceService.Summary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

func myFilterFromQuery(r *http.Request) attendance.MyFilter {
	q := r.URL.Query()

	var filter attendance.MyFilter
	if from := q.Get("date_from"); from != "" {
		filter.DateFrom = &from
	}
	if to := q.Get("date_to"); to != "" {
		filter.DateTo = &to
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PageSize, _ = strconv.Atoi(q.Get("page_size"))
	return filter
}
