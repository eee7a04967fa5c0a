package entity

import "github.com/google/uuid"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one user's claim on one seat for one showtime. At most one
// non-cancelled booking may exist per (showtime_id, seat_id); the seat's
// hall must equal the showtime's hall. Lifecycle: pending on creation,
// booked once the payment settles, cancelled by the owner before the
// showtime starts.
type Booking struct {
	BaseNoDelete
	UserID     uuid.UUID     `db:"user_id"`
	ShowtimeID uuid.UUID     `db:"showtime_id"`
	SeatID     uuid.UUID     `db:"seat_id"`
	Status     BookingStatus `db:"status"`
}
