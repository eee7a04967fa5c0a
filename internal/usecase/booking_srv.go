package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"kinopark/internal/data/entity"
	"kinopark/internal/data/repository"
	"kinopark/internal/dto/request"
	"kinopark/internal/dto/response"
	"kinopark/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking claims the requested seats for one showtime. All seats
	// succeed or none do.
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingSetResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID string) error

	ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)

	GetSeatAvailability(ctx context.Context, showtimeID string) (*response.SeatAvailabilityResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	cache *redis.Client // nil when redis is unavailable; availability falls through to postgres
	ttl   time.Duration
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, cache *redis.Client, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		cache: cache,
		ttl:   time.Duration(config.Redis.SeatMapTTLSeconds) * time.Second,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingSetResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", req.ShowtimeID, err)
	}

	seatIDs := make([]uuid.UUID, 0, len(req.SeatIDs))
	seen := make(map[uuid.UUID]bool, len(req.SeatIDs))
	for _, seatIDStr := range req.SeatIDs {
		seatID, err := uuid.Parse(seatIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid seat ID format %s: %w", seatIDStr, err)
		}
		if seen[seatID] {
			return nil, fmt.Errorf("duplicate seat %s in request", seatIDStr)
		}
		seen[seatID] = true
		seatIDs = append(seatIDs, seatID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", req.ShowtimeID))
		return nil, fmt.Errorf("failed to find showtime")
	}
	if showtime == nil || !showtime.IsActive {
		return nil, fmt.Errorf("showtime %s not found", req.ShowtimeID)
	}
	if !showtime.StartTime.After(time.Now()) {
		return nil, fmt.Errorf("showtime already started")
	}

	seats, err := s.repo.Seat.FindByIDs(ctx, seatIDs)
	if err != nil {
		s.log.Error("Failed to load seats", zap.Error(err))
		return nil, fmt.Errorf("failed to load seats")
	}
	seatByID := make(map[uuid.UUID]*entity.Seat, len(seats))
	for _, seat := range seats {
		seatByID[seat.ID] = seat
	}
	for _, seatID := range seatIDs {
		seat, ok := seatByID[seatID]
		if !ok {
			return nil, fmt.Errorf("seat %s not found", seatID.String())
		}
		if seat.HallID != showtime.HallID {
			return nil, fmt.Errorf("seat %s is not in the showtime hall", seat.Label())
		}
	}

	now := time.Now()
	bookings := make([]*entity.Booking, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		bookings = append(bookings, &entity.Booking{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID:     userUUID,
			ShowtimeID: showtimeID,
			SeatID:     seatID,
			Status:     entity.BookingStatusPending,
		})
	}

	if err := s.repo.Booking.CreateSet(ctx, bookings); err != nil {
		var conflict *repository.SeatConflictError
		if errors.As(err, &conflict) {
			return nil, fmt.Errorf("seats already booked: %s", s.seatLabels(conflict.SeatIDs, seatByID))
		}
		s.log.Error("Failed to create bookings", zap.Error(err),
			zap.String("showtime_id", req.ShowtimeID), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.invalidateSeatMap(ctx, showtimeID)

	s.log.Info("Booking created",
		zap.String("user_id", userID),
		zap.String("showtime_id", req.ShowtimeID),
		zap.Int("seats", len(bookings)))

	resp := &response.BookingSetResponse{
		Bookings:   make([]response.BookingResponse, 0, len(bookings)),
		TotalPrice: showtime.Price * float64(len(bookings)),
	}
	for _, booking := range bookings {
		item := response.BookingToResponse(booking)
		if seat := seatByID[booking.SeatID]; seat != nil {
			item.SeatLabel = seat.Label()
		}
		resp.Bookings = append(resp.Bookings, item)
	}
	return resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list bookings")
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list bookings")
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, response.BookingToResponse(booking))
	}
	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	if seat, err := s.repo.Seat.FindByID(ctx, booking.SeatID); err == nil && seat != nil {
		resp.SeatLabel = seat.Label()
	}
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID string) error {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return fmt.Errorf("booking already cancelled")
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, booking.ShowtimeID)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("failed to find showtime")
	}
	if showtime != nil && !showtime.StartTime.After(time.Now()) {
		return fmt.Errorf("showtime already started")
	}

	if err := s.repo.Booking.Cancel(ctx, booking.ID); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("failed to cancel booking")
	}

	s.invalidateSeatMap(ctx, booking.ShowtimeID)

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID))
	return nil
}

func (s *bookingService) ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findOwnedBooking(ctx, userID, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("booking is not pending")
	}

	existing, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to check existing payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to process payment")
	}
	if existing != nil {
		return nil, fmt.Errorf("payment already exists for this booking")
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, booking.ShowtimeID)
	if err != nil || showtime == nil {
		s.log.Error("Failed to find showtime for payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to find showtime")
	}
	if req.Amount != showtime.Price {
		return nil, fmt.Errorf("payment amount %.2f does not match showtime price %.2f", req.Amount, showtime.Price)
	}

	now := time.Now()
	payment := &entity.Payment{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    booking.UserID,
		BookingID: booking.ID,
		Amount:    req.Amount,
	}

	if err := s.repo.Payment.CreatePaid(ctx, payment); err != nil {
		switch {
		case errors.Is(err, repository.ErrPaymentExists):
			return nil, fmt.Errorf("payment already exists for this booking")
		case errors.Is(err, repository.ErrBookingNotPending):
			return nil, fmt.Errorf("booking is not pending")
		}
		s.log.Error("Failed to process payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to process payment")
	}

	s.log.Info("Payment processed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", payment.Amount))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *bookingService) GetSeatAvailability(ctx context.Context, showtimeID string) (*response.SeatAvailabilityResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	if cached := s.cachedSeatMap(ctx, id); cached != nil {
		return cached, nil
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("failed to find showtime")
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s not found", showtimeID)
	}

	hall, err := s.repo.Hall.FindByID(ctx, showtime.HallID)
	if err != nil || hall == nil {
		s.log.Error("Failed to find hall", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("failed to find hall")
	}

	seats, err := s.repo.Seat.FindByHallID(ctx, showtime.HallID)
	if err != nil {
		s.log.Error("Failed to load seats", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("failed to load seats")
	}

	bookedIDs, err := s.repo.Booking.FindActiveSeatIDs(ctx, id)
	if err != nil {
		s.log.Error("Failed to load booked seats", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("failed to load booked seats")
	}
	booked := make(map[uuid.UUID]bool, len(bookedIDs))
	for _, seatID := range bookedIDs {
		booked[seatID] = true
	}

	resp := &response.SeatAvailabilityResponse{
		ShowtimeID:     showtimeID,
		TotalSeats:     hall.TotalSeats,
		AvailableSeats: hall.TotalSeats - len(bookedIDs),
		Seats:          make([]response.SeatStatusResponse, 0, len(seats)),
	}
	for _, seat := range seats {
		resp.Seats = append(resp.Seats, response.SeatStatusResponse{
			SeatResponse: response.SeatToResponse(seat),
			Booked:       booked[seat.ID],
		})
	}

	s.storeSeatMap(ctx, id, resp)
	return resp, nil
}

func (s *bookingService) findOwnedBooking(ctx context.Context, userID, bookingID string) (*entity.Booking, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.UserID != userUUID {
		// Hide other users' bookings rather than confirming they exist.
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	return booking, nil
}

func (s *bookingService) seatLabels(ids []uuid.UUID, seatByID map[uuid.UUID]*entity.Seat) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if seat := seatByID[id]; seat != nil {
			labels = append(labels, seat.Label())
		} else {
			labels = append(labels, id.String())
		}
	}
	return strings.Join(labels, ", ")
}

func seatMapKey(showtimeID uuid.UUID) string {
	return "seats:" + showtimeID.String()
}

func (s *bookingService) cachedSeatMap(ctx context.Context, showtimeID uuid.UUID) *response.SeatAvailabilityResponse {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, seatMapKey(showtimeID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("Seat map cache read failed", zap.Error(err))
		}
		return nil
	}
	var resp response.SeatAvailabilityResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		s.log.Warn("Seat map cache corrupt, dropping", zap.Error(err))
		s.cache.Del(ctx, seatMapKey(showtimeID))
		return nil
	}
	return &resp
}

func (s *bookingService) storeSeatMap(ctx context.Context, showtimeID uuid.UUID, resp *response.SeatAvailabilityResponse) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, seatMapKey(showtimeID), raw, s.ttl).Err(); err != nil {
		s.log.Warn("Seat map cache write failed", zap.Error(err))
	}
}

func (s *bookingService) invalidateSeatMap(ctx context.Context, showtimeID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, seatMapKey(showtimeID)).Err(); err != nil {
		s.log.Warn("Seat map cache invalidation failed", zap.Error(err))
	}
}
