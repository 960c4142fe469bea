package repository

import (
	"context"
	"fmt"
	"time"

	"cineplex/internal/data/entity"
	"cineplex/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindByMovieAndDate(ctx context.Context, movieID uuid.UUID, date time.Time) ([]*entity.Showtime, error)
	FindByAuditoriumAndDate(ctx context.Context, auditoriumID uuid.UUID, date time.Time) ([]*entity.Showtime, error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

const showtimeColumns = `id, movie_id, auditorium_id, screening_date, start_time, end_time,
	graphics_type, screening_time_type, day_type, created_at, updated_at`

func scanShowtime(row pgx.Row) (*entity.Showtime, error) {
	var showtime entity.Showtime
	err := row.Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.AuditoriumID,
		&showtime.ScreeningDate,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.GraphicsType,
		&showtime.ScreeningTimeType,
		&showtime.DayType,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &showtime, nil
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, auditorium_id, screening_date, start_time,
		                       end_time, graphics_type, screening_time_type, day_type,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.AuditoriumID,
		showtime.ScreeningDate,
		showtime.StartTime,
		showtime.EndTime,
		showtime.GraphicsType,
		showtime.ScreeningTimeType,
		showtime.DayType,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
		)
		return fmt.Errorf("create showtime: %w", err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = $1`

	showtime, err := scanShowtime(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime %s: %w", id.String(), err)
	}

	return showtime, nil
}

func (r *showtimeRepository) FindByMovieAndDate(ctx context.Context, movieID uuid.UUID, date time.Time) ([]*entity.Showtime, error) {
	query := `SELECT ` + showtimeColumns + `
		FROM showtimes
		WHERE movie_id = $1 AND screening_date = $2
		ORDER BY start_time`

	return r.findMany(ctx, query, movieID, date)
}

func (r *showtimeRepository) FindByAuditoriumAndDate(ctx context.Context, auditoriumID uuid.UUID, date time.Time) ([]*entity.Showtime, error) {
	query := `SELECT ` + showtimeColumns + `
		FROM showtimes
		WHERE auditorium_id = $1 AND screening_date = $2
		ORDER BY start_time`

	return r.findMany(ctx, query, auditoriumID, date)
}

func (r *showtimeRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Showtime, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list showtimes", zap.Error(err))
		return nil, fmt.Errorf("list showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		showtime, err := scanShowtime(rows)
		if err != nil {
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, showtime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate showtime rows: %w", err)
	}

	return showtimes, nil
}
