package response

import (
	"time"

	"cineplex/internal/data/entity"
)

type MovieResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	Description       *string   `json:"description,omitempty"`
	PosterURL         *string   `json:"poster_url,omitempty"`
	Rating            float64   `json:"rating"`
	RatingCount       int64     `json:"rating_count"`
	ReleaseDate       string    `json:"release_date"`
	DurationInMinutes int       `json:"duration_in_minutes"`
	Published         bool      `json:"published"`
	CreatedAt         time.Time `json:"created_at"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Slug:              movie.Slug,
		Description:       movie.Description,
		PosterURL:         movie.PosterURL,
		Rating:            movie.Rating,
		RatingCount:       movie.RatingCount,
		ReleaseDate:       movie.ReleaseDate.Format("2006-01-02"),
		DurationInMinutes: movie.DurationInMinutes,
		Published:         movie.Published,
		CreatedAt:         movie.CreatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	responses := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		responses = append(responses, MovieToResponse(movie))
	}
	return responses
}
