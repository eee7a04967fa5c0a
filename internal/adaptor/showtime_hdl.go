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

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// ListShowtimes handles GET /api/showtimes?movie_id=&hall_id=&date=
func (h *ShowtimeHandler) ListShowtimes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListShowtimesRequest{
		MovieID: query.Get("movie_id"),
		HallID:  query.Get("hall_id"),
		Date:    query.Get("date"),
	}

	showtimes, err := h.service.ListShowtimes(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowtime handles GET /api/showtimes/{id}
func (h *ShowtimeHandler) GetShowtime(w http.ResponseWriter, r *http.Request) {
	showtime, err := h.service.GetShowtime(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get showtime")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// CreateShowtime handles POST /api/admin/showtimes (admin only)
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "showtime created", showtime)
}

// DeactivateShowtime handles DELETE /api/admin/showtimes/{id} (admin only)
func (h *ShowtimeHandler) DeactivateShowtime(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeactivateShowtime(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "deactivate showtime")
		return
	}

	utils.ResponseSuccess(w, "showtime deactivated", nil)
}
