package adaptor

import (
	"encoding/json"
	"net/http"

	"kinopark/internal/dto/request"
	"kinopark/internal/usecase"
	"kinopark/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// ListCinemas handles GET /api/cinemas?city=...
func (h *CinemaHandler) ListCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.service.ListCinemas(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		handleServiceError(w, h.log, err, "list cinemas")
		return
	}

	utils.ResponseSuccess(w, "success", cinemas)
}

// GetCinema handles GET /api/cinemas/{id}
func (h *CinemaHandler) GetCinema(w http.ResponseWriter, r *http.Request) {
	cinema, err := h.service.GetCinema(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get cinema")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// CreateCinema handles POST /api/admin/cinemas (admin only)
func (h *CinemaHandler) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, "cinema created", cinema)
}

// UpdateCinema handles PUT /api/admin/cinemas/{id} (admin only)
func (h *CinemaHandler) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.UpdateCinema(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update cinema")
		return
	}

	utils.ResponseSuccess(w, "cinema updated", cinema)
}

// DeleteCinema handles DELETE /api/admin/cinemas/{id} (admin only)
func (h *CinemaHandler) DeleteCinema(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCinema(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete cinema")
		return
	}

	utils.ResponseSuccess(w, "cinema deleted", nil)
}

// ListHalls handles GET /api/cinemas/{id}/halls
func (h *CinemaHandler) ListHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.ListHalls(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// CreateHall handles POST /api/admin/cinemas/{id}/halls (admin only)
func (h *CinemaHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "hall created", hall)
}

// ListSeats handles GET /api/halls/{id}/seats
func (h *CinemaHandler) ListSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.ListSeats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// GenerateSeats handles POST /api/admin/halls/{id}/seats (admin only)
func (h *CinemaHandler) GenerateSeats(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seats, err := h.service.GenerateSeats(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "generate seats")
		return
	}

	utils.ResponseCreated(w, "seats created", seats)
}
