package entity

import (
	"time"

	"github.com/google/uuid"
)

// Showtime schedules a movie in a hall for a fixed window at a fixed price.
// (hall_id, start_time) is unique; overlapping active windows for the same
// hall are rejected at creation time by the service, not by the database.
type Showtime struct {
	BaseNoDelete
	MovieID   uuid.UUID `db:"movie_id"`
	HallID    uuid.UUID `db:"hall_id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Price     float64   `db:"price"`
	IsActive  bool      `db:"is_active"`
}
