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

type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Bill, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, bill *entity.Bill) error
}

type billRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBillRepository(db database.PgxIface, log *zap.Logger) BillRepository {
	return &billRepository{
		db:  db,
		log: log.With(zap.String("repository", "bill")),
	}
}

const billColumns = `id, bill_code, user_id, showtime_id, total_price, status, created_at, updated_at`

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var bill entity.Bill
	err := row.Scan(
		&bill.ID,
		&bill.BillCode,
		&bill.UserID,
		&bill.ShowtimeID,
		&bill.TotalPrice,
		&bill.Status,
		&bill.CreatedAt,
		&bill.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	query := `
		INSERT INTO bills (id, bill_code, user_id, showtime_id, total_price, status,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		bill.ID,
		bill.BillCode,
		bill.UserID,
		bill.ShowtimeID,
		bill.TotalPrice,
		bill.Status,
		bill.CreatedAt,
		bill.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create bill",
			zap.Error(err),
			zap.String("bill_code", bill.BillCode),
		)
		return fmt.Errorf("create bill %s: %w", bill.BillCode, err)
	}

	return nil
}

func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`

	bill, err := scanBill(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bill by ID",
			zap.Error(err),
			zap.String("bill_id", id.String()),
		)
		return nil, fmt.Errorf("find bill %s: %w", id.String(), err)
	}

	return bill, nil
}

func (r *billRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Bill, error) {
	query := `SELECT ` + billColumns + `
		FROM bills
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bills",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list bills for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bills []*entity.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill row: %w", err)
		}
		bills = append(bills, bill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bill rows: %w", err)
	}

	return bills, nil
}

func (r *billRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bills WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bills for user %s: %w", userID.String(), err)
	}
	return count, nil
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	query := `
		UPDATE bills
		SET total_price = $2, status = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query,
		bill.ID,
		bill.TotalPrice,
		bill.Status,
		bill.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update bill",
			zap.Error(err),
			zap.String("bill_id", bill.ID.String()),
		)
		return fmt.Errorf("update bill %s: %w", bill.ID.String(), err)
	}

	return nil
}
