package entity

import "github.com/google/uuid"

type HallType string

const (
	HallTypeStandard HallType = "standard"
	HallTypeVIP      HallType = "vip"
	HallTypeIMAX     HallType = "imax"
	HallType4DX      HallType = "4dx"
)

// Hall type affects pricing presentation only, never structural behavior.
type Hall struct {
	BaseNoDelete
	CinemaID   uuid.UUID `db:"cinema_id"`
	Name       string    `db:"name"`
	TotalSeats int       `db:"total_seats"`
	HallType   HallType  `db:"hall_type"`
}
