package wire

import (
	"net/http"

	"kinopark/internal/adaptor"
	"kinopark/internal/data/repository"
	"kinopark/internal/usecase"
	"kinopark/pkg/middleware"
	"kinopark/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers and mounts every route group.
func Wiring(repo *repository.Repository, cache *redis.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, cache, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireMovie(r, handler.Movie, repo, logger)
	wireCinema(r, handler.Cinema, repo, logger)
	wireShowtime(r, handler.Showtime, handler.Booking, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
