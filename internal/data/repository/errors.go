package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors shared by the transactional repositories. Services wrap
// them with request detail; handlers map them to HTTP status codes.
var (
	// ErrBookingNotPending is returned when a settlement hits a booking
	// whose status already moved on.
	ErrBookingNotPending = errors.New("booking is not pending")

	// ErrPaymentExists is returned when a second payment targets an
	// already-settled booking.
	ErrPaymentExists = errors.New("booking already has a payment")
)

// SeatConflictError reports every seat of a booking set that already holds
// a non-cancelled booking for the showtime. The service layer translates
// the ids into "row R seat N" labels for the caller.
type SeatConflictError struct {
	SeatIDs []uuid.UUID
}

func (e *SeatConflictError) Error() string {
	ids := make([]string, len(e.SeatIDs))
	for i, id := range e.SeatIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("seats already booked: %s", strings.Join(ids, ", "))
}
