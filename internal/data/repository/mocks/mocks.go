// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"kinopark/internal/data/entity"
	"kinopark/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// ---- UserRepository ----

type UserRepository struct{ mock.Mock }

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

// ---- SessionRepository ----

type SessionRepository struct{ mock.Mock }

func NewSessionRepository(t testingT) *SessionRepository {
	m := &SessionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (m *SessionRepository) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// ---- GenreRepository ----

type GenreRepository struct{ mock.Mock }

func NewGenreRepository(t testingT) *GenreRepository {
	m := &GenreRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *GenreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	return m.Called(ctx, genre).Error(0)
}

func (m *GenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	args := m.Called(ctx, id)
	genre, _ := args.Get(0).(*entity.Genre)
	return genre, args.Error(1)
}

func (m *GenreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]*entity.Genre)
	return genres, args.Error(1)
}

func (m *GenreRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
	args := m.Called(ctx, movieID)
	genres, _ := args.Get(0).([]*entity.Genre)
	return genres, args.Error(1)
}

// ---- MovieRepository ----

type MovieRepository struct{ mock.Mock }

func NewMovieRepository(t testingT) *MovieRepository {
	m := &MovieRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MovieRepository) Create(ctx context.Context, movie *entity.Movie, genreIDs []uuid.UUID) error {
	return m.Called(ctx, movie, genreIDs).Error(0)
}

func (m *MovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *MovieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	args := m.Called(ctx, title)
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *MovieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	args := m.Called(ctx, limit, offset)
	movies, _ := args.Get(0).([]*entity.Movie)
	return movies, args.Error(1)
}

func (m *MovieRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MovieRepository) Update(ctx context.Context, movie *entity.Movie, genreIDs []uuid.UUID) error {
	return m.Called(ctx, movie, genreIDs).Error(0)
}

func (m *MovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// ---- CinemaRepository ----

type CinemaRepository struct{ mock.Mock }

func NewCinemaRepository(t testingT) *CinemaRepository {
	m := &CinemaRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CinemaRepository) Create(ctx context.Context, cinema *entity.Cinema) error {
	return m.Called(ctx, cinema).Error(0)
}

func (m *CinemaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error) {
	args := m.Called(ctx, id)
	cinema, _ := args.Get(0).(*entity.Cinema)
	return cinema, args.Error(1)
}

func (m *CinemaRepository) FindAll(ctx context.Context, city string) ([]*entity.Cinema, error) {
	args := m.Called(ctx, city)
	cinemas, _ := args.Get(0).([]*entity.Cinema)
	return cinemas, args.Error(1)
}

func (m *CinemaRepository) Update(ctx context.Context, cinema *entity.Cinema) error {
	return m.Called(ctx, cinema).Error(0)
}

func (m *CinemaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// ---- HallRepository ----

type HallRepository struct{ mock.Mock }

func NewHallRepository(t testingT) *HallRepository {
	m := &HallRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *HallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	return m.Called(ctx, hall).Error(0)
}

func (m *HallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	args := m.Called(ctx, id)
	hall, _ := args.Get(0).(*entity.Hall)
	return hall, args.Error(1)
}

func (m *HallRepository) FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Hall, error) {
	args := m.Called(ctx, cinemaID)
	halls, _ := args.Get(0).([]*entity.Hall)
	return halls, args.Error(1)
}

// ---- SeatRepository ----

type SeatRepository struct{ mock.Mock }

func NewSeatRepository(t testingT) *SeatRepository {
	m := &SeatRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SeatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	return m.Called(ctx, seats).Error(0)
}

func (m *SeatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	args := m.Called(ctx, id)
	seat, _ := args.Get(0).(*entity.Seat)
	return seat, args.Error(1)
}

func (m *SeatRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error) {
	args := m.Called(ctx, ids)
	seats, _ := args.Get(0).([]*entity.Seat)
	return seats, args.Error(1)
}

func (m *SeatRepository) FindByHallID(ctx context.Context, hallID uuid.UUID) ([]*entity.Seat, error) {
	args := m.Called(ctx, hallID)
	seats, _ := args.Get(0).([]*entity.Seat)
	return seats, args.Error(1)
}

// ---- ShowtimeRepository ----

type ShowtimeRepository struct{ mock.Mock }

func NewShowtimeRepository(t testingT) *ShowtimeRepository {
	m := &ShowtimeRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ShowtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	return m.Called(ctx, showtime).Error(0)
}

func (m *ShowtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	args := m.Called(ctx, id)
	showtime, _ := args.Get(0).(*entity.Showtime)
	return showtime, args.Error(1)
}

func (m *ShowtimeRepository) FindAll(ctx context.Context, filter repository.ShowtimeFilter) ([]*entity.Showtime, error) {
	args := m.Called(ctx, filter)
	showtimes, _ := args.Get(0).([]*entity.Showtime)
	return showtimes, args.Error(1)
}

func (m *ShowtimeRepository) CountOverlapping(ctx context.Context, hallID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, hallID, start, end, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ShowtimeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// ---- BookingRepository ----

type BookingRepository struct{ mock.Mock }

func NewBookingRepository(t testingT) *BookingRepository {
	m := &BookingRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BookingRepository) CreateSet(ctx context.Context, bookings []*entity.Booking) error {
	return m.Called(ctx, bookings).Error(0)
}

func (m *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	bookings, _ := args.Get(0).([]*entity.Booking)
	return bookings, args.Error(1)
}

func (m *BookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BookingRepository) FindActiveSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, showtimeID)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *BookingRepository) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	return m.Called(ctx, bookingID).Error(0)
}

// ---- PaymentRepository ----

type PaymentRepository struct{ mock.Mock }

func NewPaymentRepository(t testingT) *PaymentRepository {
	m := &PaymentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentRepository) CreatePaid(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, bookingID)
	payment, _ := args.Get(0).(*entity.Payment)
	return payment, args.Error(1)
}
