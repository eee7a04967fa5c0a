package adaptor

import (
	"net/http"
	"strings"

	"kinopark/internal/usecase"
	"kinopark/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Movie    *MovieHandler
	Cinema   *CinemaHandler
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Cinema:   NewCinemaHandler(service.Cinema, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps service error messages onto HTTP status codes.
// Conflicts (double booking, double payment, stale state) are 409 so
// clients can retry with fresh data.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "duplicate seat"),
		strings.Contains(errMsg, "does not match"),
		strings.Contains(errMsg, "not in the showtime hall"),
		strings.Contains(errMsg, "must be"):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already booked"),
		strings.Contains(errMsg, "already exists"),
		strings.Contains(errMsg, "already cancelled"),
		strings.Contains(errMsg, "already started"),
		strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already taken"),
		strings.Contains(errMsg, "already has seats"),
		strings.Contains(errMsg, "not pending"),
		strings.Contains(errMsg, "overlaps"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "credentials"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
