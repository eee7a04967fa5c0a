package entity

import "github.com/google/uuid"

type Genre struct {
	BaseSimple
	Name string `db:"name"`
}

type MovieGenre struct {
	BaseSimple
	MovieID uuid.UUID `db:"movie_id"`
	GenreID uuid.UUID `db:"genre_id"`
}
