package wire

import (
	"kinopark/internal/adaptor"
	"kinopark/internal/data/repository"
	"kinopark/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCinema(r chi.Router, cinemaHandler *adaptor.CinemaHandler, repo *repository.Repository, log *zap.Logger) {
	// Public catalog
	r.Get("/api/cinemas", cinemaHandler.ListCinemas)
	r.Get("/api/cinemas/{id}", cinemaHandler.GetCinema)
	r.Get("/api/cinemas/{id}/halls", cinemaHandler.ListHalls)
	r.Get("/api/halls/{id}/seats", cinemaHandler.ListSeats)

	// Admin venue management
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/admin/cinemas", cinemaHandler.CreateCinema)
		r.Put("/api/admin/cinemas/{id}", cinemaHandler.UpdateCinema)
		r.Delete("/api/admin/cinemas/{id}", cinemaHandler.DeleteCinema)
		r.Post("/api/admin/cinemas/{id}/halls", cinemaHandler.CreateHall)
		r.Post("/api/admin/halls/{id}/seats", cinemaHandler.GenerateSeats)
	})
}
