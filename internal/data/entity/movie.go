package entity

import "time"

type Movie struct {
	Base
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Rating      *float64   `db:"rating"`
	Duration    int        `db:"duration"` // minutes
	Language    string     `db:"language"`
	ReleaseDate *time.Time `db:"release_date"`
}
