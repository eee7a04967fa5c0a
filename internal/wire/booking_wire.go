package wire

import (
	"kinopark/internal/adaptor"
	"kinopark/internal/data/repository"
	"kinopark/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, repo *repository.Repository, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
		r.Get("/api/bookings", bookingHandler.GetUserBookings)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)

		r.Post("/api/payments", bookingHandler.ProcessPayment)
	})
}
