package wire

import (
	"kinopark/internal/adaptor"
	"kinopark/internal/data/repository"
	"kinopark/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler, bookingHandler *adaptor.BookingHandler, repo *repository.Repository, log *zap.Logger) {
	// Public listing; seat availability is served by the booking handler
	// because it reads the booking state.
	r.Get("/api/showtimes", showtimeHandler.ListShowtimes)
	r.Get("/api/showtimes/{id}", showtimeHandler.GetShowtime)
	r.Get("/api/showtimes/{id}/seats", bookingHandler.GetSeatAvailability)

	// Admin scheduling
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/admin/showtimes", showtimeHandler.CreateShowtime)
		r.Delete("/api/admin/showtimes/{id}", showtimeHandler.DeactivateShowtime)
	})
}
