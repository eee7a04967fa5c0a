package usecase

import (
	"kinopark/internal/data/repository"
	"kinopark/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Movie    MovieService
	Cinema   CinemaService
	Showtime ShowtimeService
	Booking  BookingService
}

func NewService(repo *repository.Repository, cache *redis.Client, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Movie:    NewMovieService(repo, log),
		Cinema:   NewCinemaService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Booking:  NewBookingService(repo, cache, config, log),
	}
}
