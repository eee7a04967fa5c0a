package wire

import (
	"kinopark/internal/adaptor"
	"kinopark/internal/data/repository"
	"kinopark/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, repo *repository.Repository, log *zap.Logger) {
	// Public catalog
	r.Get("/api/movies", movieHandler.ListMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovie)
	r.Get("/api/genres", movieHandler.ListGenres)

	// Admin catalog management
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/admin/movies", movieHandler.CreateMovie)
		r.Put("/api/admin/movies/{id}", movieHandler.UpdateMovie)
		r.Delete("/api/admin/movies/{id}", movieHandler.DeleteMovie)
		r.Post("/api/admin/genres", movieHandler.CreateGenre)
	})
}
