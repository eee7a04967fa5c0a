package response

import (
	"time"

	"kinopark/internal/data/entity"
)

type ShowtimeResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	HallID    string    `json:"hall_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"is_active"`
}

// SeatAvailabilityResponse lists every seat of the hall for one showtime,
// with booked seats flagged and a precomputed free-seat count.
type SeatAvailabilityResponse struct {
	ShowtimeID     string               `json:"showtime_id"`
	TotalSeats     int                  `json:"total_seats"`
	AvailableSeats int                  `json:"available_seats"`
	Seats          []SeatStatusResponse `json:"seats"`
}

type SeatStatusResponse struct {
	SeatResponse
	Booked bool `json:"booked"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        showtime.ID.String(),
		MovieID:   showtime.MovieID.String(),
		HallID:    showtime.HallID.String(),
		StartTime: showtime.StartTime,
		EndTime:   showtime.EndTime,
		Price:     showtime.Price,
		IsActive:  showtime.IsActive,
	}
}
