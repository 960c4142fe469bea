package repository

import (
	"context"
	"fmt"

	"cineplex/internal/data/entity"
	"cineplex/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuditoriumRepository interface {
	Create(ctx context.Context, auditorium *entity.Auditorium) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error)
	FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error)
	UpdateTotalSeats(ctx context.Context, id uuid.UUID, totalSeats int) error
}

type auditoriumRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditoriumRepository(db database.PgxIface, log *zap.Logger) AuditoriumRepository {
	return &auditoriumRepository{
		db:  db,
		log: log.With(zap.String("repository", "auditorium")),
	}
}

func (r *auditoriumRepository) Create(ctx context.Context, auditorium *entity.Auditorium) error {
	query := `
		INSERT INTO auditoriums (id, cinema_id, name, type, total_seats,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		auditorium.ID,
		auditorium.CinemaID,
		auditorium.Name,
		auditorium.Type,
		auditorium.TotalSeats,
		auditorium.CreatedAt,
		auditorium.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create auditorium",
			zap.Error(err),
			zap.String("cinema_id", auditorium.CinemaID.String()),
		)
		return fmt.Errorf("create auditorium %s: %w", auditorium.Name, err)
	}

	return nil
}

func (r *auditoriumRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Auditorium, error) {
	query := `
		SELECT id, cinema_id, name, type, total_seats, created_at, updated_at
		FROM auditoriums
		WHERE id = $1
	`

	var auditorium entity.Auditorium
	err := r.db.QueryRow(ctx, query, id).Scan(
		&auditorium.ID,
		&auditorium.CinemaID,
		&auditorium.Name,
		&auditorium.Type,
		&auditorium.TotalSeats,
		&auditorium.CreatedAt,
		&auditorium.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find auditorium by ID",
			zap.Error(err),
			zap.String("auditorium_id", id.String()),
		)
		return nil, fmt.Errorf("find auditorium %s: %w", id.String(), err)
	}

	return &auditorium, nil
}

func (r *auditoriumRepository) UpdateTotalSeats(ctx context.Context, id uuid.UUID, totalSeats int) error {
	query := `UPDATE auditoriums SET total_seats = $2, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, totalSeats)
	if err != nil {
		r.log.Error("Failed to update auditorium seat count",
			zap.Error(err),
			zap.String("auditorium_id", id.String()),
		)
		return fmt.Errorf("update auditorium seat count: %w", err)
	}

	return nil
}

func (r *auditoriumRepository) FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error) {
	query := `
		SELECT id, cinema_id, name, type, total_seats, created_at, updated_at
		FROM auditoriums
		WHERE cinema_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, cinemaID)
	if err != nil {
		r.log.Error("Failed to list auditoriums",
			zap.Error(err),
			zap.String("cinema_id", cinemaID.String()),
		)
		return nil, fmt.Errorf("list auditoriums for cinema %s: %w", cinemaID.String(), err)
	}
	defer rows.Close()

	var auditoriums []*entity.Auditorium
	for rows.Next() {
		var auditorium entity.Auditorium
		err := rows.Scan(
			&auditorium.ID,
			&auditorium.CinemaID,
			&auditorium.Name,
			&auditorium.Type,
			&auditorium.TotalSeats,
			&auditorium.CreatedAt,
			&auditorium.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan auditorium row: %w", err)
		}
		auditoriums = append(auditoriums, &auditorium)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate auditorium rows: %w", err)
	}

	return auditoriums, nil
}
