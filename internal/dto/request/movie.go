package request

type CreateMovieRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"max=2000"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	Duration    int      `json:"duration" validate:"required,gt=0"`
	Language    string   `json:"language" validate:"required,max=50"`
	ReleaseDate *string  `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	GenreIDs    []string `json:"genre_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

type UpdateMovieRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Language    *string  `json:"language,omitempty" validate:"omitempty,max=50"`
	ReleaseDate *string  `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	GenreIDs    []string `json:"genre_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

type CreateGenreRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
