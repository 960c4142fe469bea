package repository

import (
	"context"
	"fmt"

	"cineplex/internal/data/entity"
	"cineplex/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BillSeatRepository interface {
	CreateBatch(ctx context.Context, seats []*entity.BillSeat) error
	FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.BillSeat, error)
	ExistsForShowtime(ctx context.Context, showtimeID, seatID uuid.UUID) (bool, error)
}

type billSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBillSeatRepository(db database.PgxIface, log *zap.Logger) BillSeatRepository {
	return &billSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "bill_seat")),
	}
}

func (r *billSeatRepository) CreateBatch(ctx context.Context, seats []*entity.BillSeat) error {
	if len(seats) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin bill seat batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bill_seats (id, bill_id, seat_id, price, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, seat := range seats {
		_, err := tx.Exec(ctx, query,
			seat.ID,
			seat.BillID,
			seat.SeatID,
			seat.Price,
			seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create bill seat",
				zap.Error(err),
				zap.String("bill_id", seat.BillID.String()),
				zap.String("seat_id", seat.SeatID.String()),
			)
			return fmt.Errorf("create bill seat: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit bill seat batch: %w", err)
	}

	return nil
}

func (r *billSeatRepository) FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.BillSeat, error) {
	query := `
		SELECT id, bill_id, seat_id, price, created_at
		FROM bill_seats
		WHERE bill_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, billID)
	if err != nil {
		r.log.Error("Failed to list bill seats",
			zap.Error(err),
			zap.String("bill_id", billID.String()),
		)
		return nil, fmt.Errorf("list bill seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.BillSeat
	for rows.Next() {
		var seat entity.BillSeat
		err := rows.Scan(
			&seat.ID,
			&seat.BillID,
			&seat.SeatID,
			&seat.Price,
			&seat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bill seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bill seat rows: %w", err)
	}

	return seats, nil
}

func (r *billSeatRepository) ExistsForShowtime(ctx context.Context, showtimeID, seatID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bill_seats bs
			JOIN bills b ON b.id = bs.bill_id
			WHERE b.showtime_id = $1
			  AND bs.seat_id = $2
			  AND b.status <> 'CANCELLED'
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, showtimeID, seatID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check seat availability",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.String("seat_id", seatID.String()),
		)
		return false, fmt.Errorf("check seat availability: %w", err)
	}

	return exists, nil
}
