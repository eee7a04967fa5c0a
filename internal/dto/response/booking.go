package response

import (
	"time"

	"kinopark/internal/data/entity"
)

type BookingResponse struct {
	ID         string               `json:"id"`
	UserID     string               `json:"user_id"`
	ShowtimeID string               `json:"showtime_id"`
	SeatID     string               `json:"seat_id"`
	SeatLabel  string               `json:"seat_label,omitempty"`
	Status     entity.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

// BookingSetResponse groups the bookings created by one request together
// with the price they must be settled at.
type BookingSetResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalPrice float64           `json:"total_price"`
}

type PaymentResponse struct {
	ID        string               `json:"id"`
	BookingID string               `json:"booking_id"`
	UserID    string               `json:"user_id"`
	Amount    float64              `json:"amount"`
	Status    entity.PaymentStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		UserID:     booking.UserID.String(),
		ShowtimeID: booking.ShowtimeID.String(),
		SeatID:     booking.SeatID.String(),
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID.String(),
		BookingID: payment.BookingID.String(),
		UserID:    payment.UserID.String(),
		Amount:    payment.Amount,
		Status:    payment.Status,
		CreatedAt: payment.CreatedAt,
	}
}
