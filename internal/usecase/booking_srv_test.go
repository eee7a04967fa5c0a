package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"kinopark/internal/data/entity"
	"kinopark/internal/data/repository"
	"kinopark/internal/data/repository/mocks"
	"kinopark/internal/dto/request"
	"kinopark/internal/dto/response"
	"kinopark/internal/usecase"
	"kinopark/pkg/utils"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Redis: utils.RedisConfig{SeatMapTTLSeconds: 60},
	}
}

func newSeat(hallID uuid.UUID, row, number int) *entity.Seat {
	return &entity.Seat{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		HallID:       hallID,
		Row:          row,
		Number:       number,
		SeatType:     entity.SeatTypeStandard,
	}
}

func newShowtime(hallID uuid.UUID, price float64, start time.Time) *entity.Showtime {
	return &entity.Showtime{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		MovieID:      uuid.New(),
		HallID:       hallID,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Price:        price,
		IsActive:     true,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	seatRepo := mocks.NewSeatRepository(t)
	bookingRepo := mocks.NewBookingRepository(t)

	cacheClient, cacheMock := redismock.NewClientMock()

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Seat:     seatRepo,
		Booking:  bookingRepo,
	}
	service := usecase.NewBookingService(repo, cacheClient, testConfig(), zap.NewNop())

	ctx := context.Background()
	hallID := uuid.New()
	userID := uuid.New()
	showtime := newShowtime(hallID, 1200, time.Now().Add(24*time.Hour))
	seatA := newSeat(hallID, 1, 1)
	seatB := newSeat(hallID, 1, 2)

	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)
	seatRepo.On("FindByIDs", ctx, []uuid.UUID{seatA.ID, seatB.ID}).
		Return([]*entity.Seat{seatA, seatB}, nil)
	bookingRepo.On("CreateSet", ctx, mock.AnythingOfType("[]*entity.Booking")).
		Run(func(args mock.Arguments) {
			bookings := args.Get(1).([]*entity.Booking)
			require.Len(t, bookings, 2)
			for _, b := range bookings {
				assert.Equal(t, entity.BookingStatusPending, b.Status)
				assert.Equal(t, userID, b.UserID)
				assert.Equal(t, showtime.ID, b.ShowtimeID)
			}
		}).
		Return(nil)

	cacheMock.ExpectDel("seats:" + showtime.ID.String()).SetVal(1)

	resp, err := service.CreateBooking(ctx, userID.String(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID.String(),
		SeatIDs:    []string{seatA.ID.String(), seatB.ID.String()},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, 2400.0, resp.TotalPrice)
	assert.Equal(t, "row 1 seat 1", resp.Bookings[0].SeatLabel)

	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestCreateBooking_SeatConflict(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	seatRepo := mocks.NewSeatRepository(t)
	bookingRepo := mocks.NewBookingRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Seat:     seatRepo,
		Booking:  bookingRepo,
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	hallID := uuid.New()
	showtime := newShowtime(hallID, 1000, time.Now().Add(time.Hour))
	seat := newSeat(hallID, 3, 7)

	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)
	seatRepo.On("FindByIDs", ctx, []uuid.UUID{seat.ID}).Return([]*entity.Seat{seat}, nil)
	bookingRepo.On("CreateSet", ctx, mock.Anything).
		Return(&repository.SeatConflictError{SeatIDs: []uuid.UUID{seat.ID}})

	resp, err := service.CreateBooking(ctx, uuid.New().String(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID.String(),
		SeatIDs:    []string{seat.ID.String()},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "seats already booked")
	assert.Contains(t, err.Error(), "row 3 seat 7")
}

func TestCreateBooking_SeatNotInHall(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	seatRepo := mocks.NewSeatRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Seat:     seatRepo,
		Booking:  mocks.NewBookingRepository(t),
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	showtime := newShowtime(uuid.New(), 1000, time.Now().Add(time.Hour))
	straySeat := newSeat(uuid.New(), 2, 5) // different hall

	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)
	seatRepo.On("FindByIDs", ctx, []uuid.UUID{straySeat.ID}).
		Return([]*entity.Seat{straySeat}, nil)

	resp, err := service.CreateBooking(ctx, uuid.New().String(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID.String(),
		SeatIDs:    []string{straySeat.ID.String()},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "row 2 seat 5 is not in the showtime hall")
}

func TestCreateBooking_ShowtimeAlreadyStarted(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Seat:     mocks.NewSeatRepository(t),
		Booking:  mocks.NewBookingRepository(t),
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	showtime := newShowtime(uuid.New(), 1000, time.Now().Add(-time.Minute))

	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)

	_, err := service.CreateBooking(ctx, uuid.New().String(), &request.CreateBookingRequest{
		ShowtimeID: showtime.ID.String(),
		SeatIDs:    []string{uuid.New().String()},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "showtime already started")
}

func TestCreateBooking_DuplicateSeatInRequest(t *testing.T) {
	repo := &repository.Repository{
		Showtime: mocks.NewShowtimeRepository(t),
		Seat:     mocks.NewSeatRepository(t),
		Booking:  mocks.NewBookingRepository(t),
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	seatID := uuid.New().String()
	_, err := service.CreateBooking(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		ShowtimeID: uuid.New().String(),
		SeatIDs:    []string{seatID, seatID},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate seat")
}

func TestCreateBooking_TooManySeats(t *testing.T) {
	repo := &repository.Repository{
		Showtime: mocks.NewShowtimeRepository(t),
		Seat:     mocks.NewSeatRepository(t),
		Booking:  mocks.NewBookingRepository(t),
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	seatIDs := make([]string, 11)
	for i := range seatIDs {
		seatIDs[i] = uuid.New().String()
	}

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		ShowtimeID: uuid.New().String(),
		SeatIDs:    seatIDs,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestProcessPayment_Success(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	bookingRepo := mocks.NewBookingRepository(t)
	paymentRepo := mocks.NewPaymentRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Booking:  bookingRepo,
		Payment:  paymentRepo,
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()
	showtime := newShowtime(uuid.New(), 1500, time.Now().Add(time.Hour))
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       userID,
		ShowtimeID:   showtime.ID,
		SeatID:       uuid.New(),
		Status:       entity.BookingStatusPending,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)
	paymentRepo.On("FindByBookingID", ctx, booking.ID).Return(nil, nil)
	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)
	paymentRepo.On("CreatePaid", ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(args mock.Arguments) {
			payment := args.Get(1).(*entity.Payment)
			assert.Equal(t, booking.ID, payment.BookingID)
			assert.Equal(t, 1500.0, payment.Amount)
			payment.Status = entity.PaymentStatusPaid
		}).
		Return(nil)

	resp, err := service.ProcessPayment(ctx, userID.String(), &request.ProcessPaymentRequest{
		BookingID: booking.ID.String(),
		Amount:    1500,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.PaymentStatusPaid, resp.Status)
	assert.Equal(t, booking.ID.String(), resp.BookingID)
}

func TestProcessPayment_AmountMismatch(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	bookingRepo := mocks.NewBookingRepository(t)
	paymentRepo := mocks.NewPaymentRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Booking:  bookingRepo,
		Payment:  paymentRepo,
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()
	showtime := newShowtime(uuid.New(), 1500, time.Now().Add(time.Hour))
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       userID,
		ShowtimeID:   showtime.ID,
		Status:       entity.BookingStatusPending,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)
	paymentRepo.On("FindByBookingID", ctx, booking.ID).Return(nil, nil)
	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)

	_, err := service.ProcessPayment(ctx, userID.String(), &request.ProcessPaymentRequest{
		BookingID: booking.ID.String(),
		Amount:    999,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match showtime price")
}

func TestProcessPayment_NotOwner(t *testing.T) {
	bookingRepo := mocks.NewBookingRepository(t)

	repo := &repository.Repository{
		Showtime: mocks.NewShowtimeRepository(t),
		Booking:  bookingRepo,
		Payment:  mocks.NewPaymentRepository(t),
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       uuid.New(),
		Status:       entity.BookingStatusPending,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)

	// Some other user tries to pay; the booking must stay hidden.
	_, err := service.ProcessPayment(ctx, uuid.New().String(), &request.ProcessPaymentRequest{
		BookingID: booking.ID.String(),
		Amount:    1500,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProcessPayment_AlreadyPaid(t *testing.T) {
	bookingRepo := mocks.NewBookingRepository(t)
	paymentRepo := mocks.NewPaymentRepository(t)

	repo := &repository.Repository{
		Showtime: mocks.NewShowtimeRepository(t),
		Booking:  bookingRepo,
		Payment:  paymentRepo,
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       userID,
		ShowtimeID:   uuid.New(),
		Status:       entity.BookingStatusPending,
	}
	paid := &entity.Payment{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		BookingID:    booking.ID,
		Status:       entity.PaymentStatusPaid,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)
	paymentRepo.On("FindByBookingID", ctx, booking.ID).Return(paid, nil)

	_, err := service.ProcessPayment(ctx, userID.String(), &request.ProcessPaymentRequest{
		BookingID: booking.ID.String(),
		Amount:    800,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment already exists")
}

// Two payments race past the duplicate check; the second must fail on the
// payments.booking_id unique constraint surfaced by the repository.
func TestProcessPayment_SettlementRace(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	bookingRepo := mocks.NewBookingRepository(t)
	paymentRepo := mocks.NewPaymentRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Booking:  bookingRepo,
		Payment:  paymentRepo,
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()
	showtime := newShowtime(uuid.New(), 800, time.Now().Add(time.Hour))
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       userID,
		ShowtimeID:   showtime.ID,
		Status:       entity.BookingStatusPending,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)
	paymentRepo.On("FindByBookingID", ctx, booking.ID).Return(nil, nil)
	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)
	paymentRepo.On("CreatePaid", ctx, mock.Anything).Return(repository.ErrPaymentExists)

	_, err := service.ProcessPayment(ctx, userID.String(), &request.ProcessPaymentRequest{
		BookingID: booking.ID.String(),
		Amount:    800,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment already exists")
}

func TestProcessPayment_BookingNotPending(t *testing.T) {
	bookingRepo := mocks.NewBookingRepository(t)

	repo := &repository.Repository{
		Showtime: mocks.NewShowtimeRepository(t),
		Booking:  bookingRepo,
		Payment:  mocks.NewPaymentRepository(t),
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       userID,
		Status:       entity.BookingStatusBooked,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)

	_, err := service.ProcessPayment(ctx, userID.String(), &request.ProcessPaymentRequest{
		BookingID: booking.ID.String(),
		Amount:    800,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not pending")
}

func TestCancelBooking_Success(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	bookingRepo := mocks.NewBookingRepository(t)

	cacheClient, cacheMock := redismock.NewClientMock()

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Booking:  bookingRepo,
	}
	service := usecase.NewBookingService(repo, cacheClient, testConfig(), zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()
	showtime := newShowtime(uuid.New(), 1000, time.Now().Add(time.Hour))
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       userID,
		ShowtimeID:   showtime.ID,
		Status:       entity.BookingStatusPending,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)
	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)
	bookingRepo.On("Cancel", ctx, booking.ID).Return(nil)

	cacheMock.ExpectDel("seats:" + showtime.ID.String()).SetVal(1)

	err := service.CancelBooking(ctx, userID.String(), booking.ID.String())

	require.NoError(t, err)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestCancelBooking_AfterShowtimeStart(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	bookingRepo := mocks.NewBookingRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Booking:  bookingRepo,
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()
	showtime := newShowtime(uuid.New(), 1000, time.Now().Add(-time.Hour))
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       userID,
		ShowtimeID:   showtime.ID,
		Status:       entity.BookingStatusBooked,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)
	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)

	err := service.CancelBooking(ctx, userID.String(), booking.ID.String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "showtime already started")
}

func TestCancelBooking_NotOwner(t *testing.T) {
	bookingRepo := mocks.NewBookingRepository(t)

	repo := &repository.Repository{
		Showtime: mocks.NewShowtimeRepository(t),
		Booking:  bookingRepo,
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       uuid.New(),
		Status:       entity.BookingStatusPending,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)

	err := service.CancelBooking(ctx, uuid.New().String(), booking.ID.String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetSeatAvailability_ComputesFreeSeats(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	hallRepo := mocks.NewHallRepository(t)
	seatRepo := mocks.NewSeatRepository(t)
	bookingRepo := mocks.NewBookingRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Hall:     hallRepo,
		Seat:     seatRepo,
		Booking:  bookingRepo,
	}
	service := usecase.NewBookingService(repo, nil, testConfig(), zap.NewNop())

	ctx := context.Background()
	hallID := uuid.New()
	hall := &entity.Hall{
		BaseNoDelete: entity.BaseNoDelete{ID: hallID},
		CinemaID:     uuid.New(),
		Name:         "Hall 1",
		TotalSeats:   5,
	}
	showtime := newShowtime(hallID, 1000, time.Now().Add(time.Hour))

	seats := make([]*entity.Seat, 0, 5)
	for i := 1; i <= 5; i++ {
		seats = append(seats, newSeat(hallID, 1, i))
	}
	bookedIDs := []uuid.UUID{seats[0].ID, seats[3].ID}

	showtimeRepo.On("FindByID", ctx, showtime.ID).Return(showtime, nil)
	hallRepo.On("FindByID", ctx, hallID).Return(hall, nil)
	seatRepo.On("FindByHallID", ctx, hallID).Return(seats, nil)
	bookingRepo.On("FindActiveSeatIDs", ctx, showtime.ID).Return(bookedIDs, nil)

	resp, err := service.GetSeatAvailability(ctx, showtime.ID.String())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 5, resp.TotalSeats)
	assert.Equal(t, 3, resp.AvailableSeats)
	require.Len(t, resp.Seats, 5)
	assert.True(t, resp.Seats[0].Booked)
	assert.False(t, resp.Seats[1].Booked)
	assert.True(t, resp.Seats[3].Booked)
}

func TestGetSeatAvailability_ServedFromCache(t *testing.T) {
	cacheClient, cacheMock := redismock.NewClientMock()

	// No repository expectations: a cache hit must not touch postgres.
	repo := &repository.Repository{
		Showtime: mocks.NewShowtimeRepository(t),
		Hall:     mocks.NewHallRepository(t),
		Seat:     mocks.NewSeatRepository(t),
		Booking:  mocks.NewBookingRepository(t),
	}
	service := usecase.NewBookingService(repo, cacheClient, testConfig(), zap.NewNop())

	showtimeID := uuid.New()
	cached := &response.SeatAvailabilityResponse{
		ShowtimeID:     showtimeID.String(),
		TotalSeats:     50,
		AvailableSeats: 48,
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	cacheMock.ExpectGet("seats:" + showtimeID.String()).SetVal(string(raw))

	resp, err := service.GetSeatAvailability(context.Background(), showtimeID.String())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 50, resp.TotalSeats)
	assert.Equal(t, 48, resp.AvailableSeats)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}
