package repository

import (
	"context"
	"fmt"

	"kinopark/internal/data/entity"
	"kinopark/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// CreatePaid records the payment and confirms its booking in one
	// transaction: the payment row is inserted with status "paid" and
	// the booking moves from "pending" to "booked". A payment is never
	// observable without its booking confirmed, and vice versa.
	// Returns ErrBookingNotPending when the booking status already
	// moved on, ErrPaymentExists when a payment row already exists.
	CreatePaid(ctx context.Context, payment *entity.Payment) error

	// FindByBookingID returns nil when the booking has no payment yet.
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) CreatePaid(ctx context.Context, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin payment: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the booking so a duplicate payment racing this one blocks
	// here and then fails the status check.
	var status entity.BookingStatus
	err = tx.QueryRow(ctx,
		`SELECT status FROM bookings WHERE id = $1 FOR UPDATE`,
		payment.BookingID,
	).Scan(&status)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("booking %s not found", payment.BookingID.String())
	}
	if err != nil {
		r.log.Error("Failed to lock booking for payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("lock booking %s: %w", payment.BookingID.String(), err)
	}

	if status != entity.BookingStatusPending {
		return ErrBookingNotPending
	}

	payment.Status = entity.PaymentStatusPaid

	_, err = tx.Exec(ctx, `
		INSERT INTO payments (id, user_id, booking_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		payment.ID,
		payment.UserID,
		payment.BookingID,
		payment.Amount,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPaymentExists
		}
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	result, err := tx.Exec(ctx,
		`UPDATE bookings SET status = 'booked', updated_at = NOW() WHERE id = $1 AND status = 'pending'`,
		payment.BookingID,
	)
	if err != nil {
		r.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("confirm booking %s: %w", payment.BookingID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return ErrBookingNotPending
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, user_id, booking_id, amount, status, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payment for booking %s: %w", bookingID.String(), err)
	}

	return &payment, nil
}
