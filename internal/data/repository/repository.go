package repository

import (
	"kinopark/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Genre    GenreRepository
	Movie    MovieRepository
	Cinema   CinemaRepository
	Hall     HallRepository
	Seat     SeatRepository
	Showtime ShowtimeRepository
	Booking  BookingRepository
	Payment  PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Genre:    NewGenreRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		Cinema:   NewCinemaRepository(db, log),
		Hall:     NewHallRepository(db, log),
		Seat:     NewSeatRepository(db, log),
		Showtime: NewShowtimeRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
	}
}
