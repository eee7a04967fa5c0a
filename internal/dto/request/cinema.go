package request

type CreateCinemaRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	City        string `json:"city" validate:"required,min=2,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateCinemaRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	City        *string `json:"city,omitempty" validate:"omitempty,min=2,max=100"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

type CreateHallRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	TotalSeats int    `json:"total_seats" validate:"required,gt=0"`
	HallType   string `json:"hall_type" validate:"omitempty,oneof=standard vip imax 4dx"`
}

type CreateSeatsRequest struct {
	Rows        int    `json:"rows" validate:"required,gt=0,max=100"`
	SeatsPerRow int    `json:"seats_per_row" validate:"required,gt=0,max=100"`
	SeatType    string `json:"seat_type" validate:"omitempty,oneof=standard vip couple"`
}
