package request

type CreateShowtimeRequest struct {
	MovieID   string  `json:"movie_id" validate:"required,uuid4"`
	HallID    string  `json:"hall_id" validate:"required,uuid4"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

type ListShowtimesRequest struct {
	MovieID string `json:"movie_id" validate:"omitempty,uuid4"`
	HallID  string `json:"hall_id" validate:"omitempty,uuid4"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
