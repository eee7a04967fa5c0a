package response

import (
	"time"

	"kinopark/internal/data/entity"
)

type CinemaResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type HallResponse struct {
	ID         string          `json:"id"`
	CinemaID   string          `json:"cinema_id"`
	Name       string          `json:"name"`
	TotalSeats int             `json:"total_seats"`
	HallType   entity.HallType `json:"hall_type"`
}

type SeatResponse struct {
	ID       string          `json:"id"`
	HallID   string          `json:"hall_id"`
	Row      int             `json:"row"`
	Number   int             `json:"number"`
	SeatType entity.SeatType `json:"seat_type"`
}

func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:          cinema.ID.String(),
		Name:        cinema.Name,
		City:        cinema.City,
		Address:     cinema.Address,
		Description: cinema.Description,
		CreatedAt:   cinema.CreatedAt,
	}
}

func HallToResponse(hall *entity.Hall) HallResponse {
	return HallResponse{
		ID:         hall.ID.String(),
		CinemaID:   hall.CinemaID.String(),
		Name:       hall.Name,
		TotalSeats: hall.TotalSeats,
		HallType:   hall.HallType,
	}
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:       seat.ID.String(),
		HallID:   seat.HallID.String(),
		Row:      seat.Row,
		Number:   seat.Number,
		SeatType: seat.SeatType,
	}
}
