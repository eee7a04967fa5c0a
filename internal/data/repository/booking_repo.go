package repository

import (
	"context"
	"errors"
	"fmt"

	"kinopark/internal/data/entity"
	"kinopark/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateSet inserts all bookings of one request as a single atomic
	// unit. Every booking must reference the same showtime. Returns
	// *SeatConflictError when any seat already holds a non-cancelled
	// booking for that showtime; in that case nothing is inserted.
	CreateSet(ctx context.Context, bookings []*entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindActiveSeatIDs returns seat ids with a non-cancelled booking
	// for the showtime.
	FindActiveSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error)

	Cancel(ctx context.Context, bookingID uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// isUniqueViolation reports a SQLSTATE 23505 from the partial unique index
// on (showtime_id, seat_id) WHERE status <> 'cancelled'.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *bookingRepository) CreateSet(ctx context.Context, bookings []*entity.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	showtimeID := bookings[0].ShowtimeID

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking set: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent bookings for the same showtime. Locking the
	// showtime row makes the conflict check below race-free; the partial
	// unique index is the backstop.
	var locked uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM showtimes WHERE id = $1 FOR UPDATE`, showtimeID).Scan(&locked)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("showtime %s not found", showtimeID.String())
	}
	if err != nil {
		r.log.Error("Failed to lock showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return fmt.Errorf("lock showtime %s: %w", showtimeID.String(), err)
	}

	seatIDs := make([]uuid.UUID, len(bookings))
	for i, b := range bookings {
		seatIDs[i] = b.SeatID
	}

	rows, err := tx.Query(ctx, `
		SELECT seat_id
		FROM bookings
		WHERE showtime_id = $1 AND seat_id = ANY($2) AND status <> 'cancelled'
	`, showtimeID, seatIDs)
	if err != nil {
		r.log.Error("Failed to check seat conflicts",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return fmt.Errorf("check seat conflicts for showtime %s: %w", showtimeID.String(), err)
	}

	var conflicts []uuid.UUID
	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			rows.Close()
			return fmt.Errorf("scan conflicting seat: %w", err)
		}
		conflicts = append(conflicts, seatID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read seat conflicts: %w", err)
	}

	if len(conflicts) > 0 {
		return &SeatConflictError{SeatIDs: conflicts}
	}

	for _, booking := range bookings {
		_, err := tx.Exec(ctx, `
			INSERT INTO bookings (id, user_id, showtime_id, seat_id, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			booking.ID,
			booking.UserID,
			booking.ShowtimeID,
			booking.SeatID,
			booking.Status,
			booking.CreatedAt,
			booking.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				// A concurrent request slipped in before our lock; report
				// the seat as taken rather than a server failure.
				return &SeatConflictError{SeatIDs: []uuid.UUID{booking.SeatID}}
			}
			r.log.Error("Failed to create booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("seat_id", booking.SeatID.String()),
			)
			return fmt.Errorf("create booking for seat %s: %w", booking.SeatID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking set: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, showtime_id, seat_id, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowtimeID,
		&booking.SeatID,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, showtime_id, seat_id, status, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ShowtimeID,
			&booking.SeatID,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindActiveSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT seat_id
		FROM bookings
		WHERE showtime_id = $1 AND status <> 'cancelled'
	`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find active seat IDs",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find active seat IDs for showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	var seatIDs []uuid.UUID
	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			r.log.Error("Failed to scan seat ID row", zap.Error(err))
			return nil, fmt.Errorf("scan seat ID row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}

	return seatIDs, nil
}

func (r *bookingRepository) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status <> 'cancelled'
	`

	result, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found or already cancelled", bookingID.String())
	}

	return nil
}
