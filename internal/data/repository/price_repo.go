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

type BaseTicketPriceRepository interface {
	FindByKey(ctx context.Context, key entity.PriceKey) (*entity.BaseTicketPrice, error)
	Upsert(ctx context.Context, price *entity.BaseTicketPrice) error
	FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.BaseTicketPrice, error)
}

type baseTicketPriceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBaseTicketPriceRepository(db database.PgxIface, log *zap.Logger) BaseTicketPriceRepository {
	return &baseTicketPriceRepository{
		db:  db,
		log: log.With(zap.String("repository", "base_ticket_price")),
	}
}

const priceColumns = `id, cinema_id, auditorium_type, day_type, screening_time_type,
	graphics_type, seat_type, price, created_at, updated_at`

func scanPrice(row pgx.Row) (*entity.BaseTicketPrice, error) {
	var price entity.BaseTicketPrice
	err := row.Scan(
		&price.ID,
		&price.CinemaID,
		&price.AuditoriumType,
		&price.DayType,
		&price.ScreeningTimeType,
		&price.GraphicsType,
		&price.SeatType,
		&price.Price,
		&price.CreatedAt,
		&price.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *baseTicketPriceRepository) FindByKey(ctx context.Context, key entity.PriceKey) (*entity.BaseTicketPrice, error) {
	query := `SELECT ` + priceColumns + `
		FROM base_ticket_prices
		WHERE cinema_id = $1
		  AND auditorium_type = $2
		  AND day_type = $3
		  AND screening_time_type = $4
		  AND graphics_type = $5
		  AND seat_type = $6`

	price, err := scanPrice(r.db.QueryRow(ctx, query,
		key.CinemaID,
		key.AuditoriumType,
		key.DayType,
		key.ScreeningTimeType,
		key.GraphicsType,
		key.SeatType,
	))

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find base ticket price",
			zap.Error(err),
			zap.String("cinema_id", key.CinemaID.String()),
		)
		return nil, fmt.Errorf("find base ticket price: %w", err)
	}

	return price, nil
}

func (r *baseTicketPriceRepository) Upsert(ctx context.Context, price *entity.BaseTicketPrice) error {
	query := `
		INSERT INTO base_ticket_prices (id, cinema_id, auditorium_type, day_type,
		                                screening_time_type, graphics_type, seat_type,
		                                price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (cinema_id, auditorium_type, day_type, screening_time_type,
		             graphics_type, seat_type)
		DO UPDATE SET price = EXCLUDED.price, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		price.ID,
		price.CinemaID,
		price.AuditoriumType,
		price.DayType,
		price.ScreeningTimeType,
		price.GraphicsType,
		price.SeatType,
		price.Price,
		price.CreatedAt,
		price.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert base ticket price",
			zap.Error(err),
			zap.String("cinema_id", price.CinemaID.String()),
		)
		return fmt.Errorf("upsert base ticket price: %w", err)
	}

	return nil
}

func (r *baseTicketPriceRepository) FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.BaseTicketPrice, error) {
	query := `SELECT ` + priceColumns + `
		FROM base_ticket_prices
		WHERE cinema_id = $1
		ORDER BY auditorium_type, day_type, screening_time_type, graphics_type, seat_type`

	rows, err := r.db.Query(ctx, query, cinemaID)
	if err != nil {
		r.log.Error("Failed to list base ticket prices",
			zap.Error(err),
			zap.String("cinema_id", cinemaID.String()),
		)
		return nil, fmt.Errorf("list base ticket prices: %w", err)
	}
	defer rows.Close()

	var prices []*entity.BaseTicketPrice
	for rows.Next() {
		price, err := scanPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan base ticket price row: %w", err)
		}
		prices = append(prices, price)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate base ticket price rows: %w", err)
	}

	return prices, nil
}
