package repository

import (
	"context"
	"fmt"

	"cineplex/internal/data/entity"
	"cineplex/pkg/database"
	"cineplex/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindBySlugAndPublished(ctx context.Context, slug string) (*entity.Movie, error)
	FindAllPublishedOrderByRating(ctx context.Context) ([]*entity.Movie, error)
	FindAllOrderByReleaseDate(ctx context.Context) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	SlugExists(ctx context.Context, slug string) (bool, error)

	// ApplyRating folds one rating into the movie aggregates under a row
	// lock and returns the updated movie.
	ApplyRating(ctx context.Context, movieID uuid.UUID, rating int) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, slug, description, poster_url, rating,
	rating_count, total_ratings, release_date, duration_in_minutes,
	published, created_at, updated_at`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Slug,
		&movie.Description,
		&movie.PosterURL,
		&movie.Rating,
		&movie.RatingCount,
		&movie.TotalRatings,
		&movie.ReleaseDate,
		&movie.DurationInMinutes,
		&movie.Published,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (` + movieColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Slug,
		movie.Description,
		movie.PosterURL,
		movie.Rating,
		movie.RatingCount,
		movie.TotalRatings,
		movie.ReleaseDate,
		movie.DurationInMinutes,
		movie.Published,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie %s: %w", id.String(), err)
	}

	return movie, nil
}

func (r *movieRepository) FindBySlugAndPublished(ctx context.Context, slug string) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE slug = $1 AND published = true`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find movie by slug %s: %w", slug, err)
	}

	return movie, nil
}

func (r *movieRepository) FindAllPublishedOrderByRating(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE published = true ORDER BY rating DESC`
	return r.findAll(ctx, query)
}

func (r *movieRepository) FindAllOrderByReleaseDate(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY release_date DESC`
	return r.findAll(ctx, query)
}

func (r *movieRepository) findAll(ctx context.Context, query string) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, slug = $3, description = $4, poster_url = $5,
		    release_date = $6, duration_in_minutes = $7, published = $8,
		    updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Slug,
		movie.Description,
		movie.PosterURL,
		movie.ReleaseDate,
		movie.DurationInMinutes,
		movie.Published,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", movie.ID.String())
	}

	return nil
}

func (r *movieRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT COUNT(*) FROM movies WHERE slug = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, slug).Scan(&count); err != nil {
		r.log.Error("Failed to count movie slug", zap.Error(err), zap.String("slug", slug))
		return false, fmt.Errorf("count movie slug %s: %w", slug, err)
	}

	return count > 0, nil
}

func (r *movieRepository) ApplyRating(ctx context.Context, movieID uuid.UUID, rating int) (*entity.Movie, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin rating tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the movie row for the read-modify-write so concurrent ratings
	// cannot lose updates.
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1 FOR UPDATE`

	movie, err := scanMovie(tx.QueryRow(ctx, query, movieID))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("movie %s: %w", movieID.String(), utils.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to lock movie for rating",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("lock movie %s: %w", movieID.String(), err)
	}

	movie.RatingCount++
	movie.TotalRatings += int64(rating)
	movie.Rating = utils.RoundHalfUp1(float64(movie.TotalRatings) / float64(movie.RatingCount))

	_, err = tx.Exec(ctx,
		`UPDATE movies SET rating = $2, rating_count = $3, total_ratings = $4, updated_at = NOW() WHERE id = $1`,
		movie.ID, movie.Rating, movie.RatingCount, movie.TotalRatings,
	)
	if err != nil {
		r.log.Error("Failed to apply rating",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("apply rating to movie %s: %w", movieID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit rating tx: %w", err)
	}

	return movie, nil
}
