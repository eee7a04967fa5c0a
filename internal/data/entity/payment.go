package entity

import "github.com/google/uuid"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment settles exactly one booking. Amount must equal the showtime
// price; reaching "paid" moves the booking to "booked" inside the same
// transaction.
type Payment struct {
	BaseNoDelete
	UserID    uuid.UUID     `db:"user_id"`
	BookingID uuid.UUID     `db:"booking_id"`
	Amount    float64       `db:"amount"`
	Status    PaymentStatus `db:"status"`
}
