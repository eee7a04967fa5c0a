package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type SeatType string

const (
	SeatTypeStandard SeatType = "standard"
	SeatTypeVIP      SeatType = "vip"
	SeatTypeCouple   SeatType = "couple"
)

// Seat is addressed by (hall, row, number); the triple is unique.
type Seat struct {
	BaseNoDelete
	HallID   uuid.UUID `db:"hall_id"`
	Row      int       `db:"seat_row"`
	Number   int       `db:"seat_number"`
	SeatType SeatType  `db:"seat_type"`
}

// Label is the human form used in error messages and responses.
func (s *Seat) Label() string {
	return fmt.Sprintf("row %d seat %d", s.Row, s.Number)
}
