package response

import (
	"time"

	"kinopark/internal/data/entity"
)

type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MovieResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Rating      *float64        `json:"rating,omitempty"`
	Duration    int             `json:"duration"`
	Language    string          `json:"language"`
	ReleaseDate *string         `json:"release_date,omitempty"`
	Genres      []GenreResponse `json:"genres,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID.String(),
		Name: genre.Name,
	}
}

func MovieToResponse(movie *entity.Movie, genres []entity.Genre) MovieResponse {
	resp := MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Rating:      movie.Rating,
		Duration:    movie.Duration,
		Language:    movie.Language,
		CreatedAt:   movie.CreatedAt,
	}
	if movie.ReleaseDate != nil {
		date := movie.ReleaseDate.Format("2006-01-02")
		resp.ReleaseDate = &date
	}
	for i := range genres {
		resp.Genres = append(resp.Genres, GenreToResponse(&genres[i]))
	}
	return resp
}
