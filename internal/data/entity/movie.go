package entity

import "time"

type Movie struct {
	Base
	Title             string    `db:"title"`
	Slug              string    `db:"slug"`
	Description       *string   `db:"description"`
	PosterURL         *string   `db:"poster_url"`
	Rating            float64   `db:"rating"`
	RatingCount       int64     `db:"rating_count"`
	TotalRatings      int64     `db:"total_ratings"`
	ReleaseDate       time.Time `db:"release_date"`
	DurationInMinutes int       `db:"duration_in_minutes"`
	Published         bool      `db:"published"`
}
