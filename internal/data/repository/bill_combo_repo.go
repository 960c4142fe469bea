package repository

import (
	"context"
	"fmt"

	"cineplex/internal/data/entity"
	"cineplex/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BillComboRepository interface {
	Create(ctx context.Context, combo *entity.BillCombo) error
	FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.BillCombo, error)
}

type billComboRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBillComboRepository(db database.PgxIface, log *zap.Logger) BillComboRepository {
	return &billComboRepository{
		db:  db,
		log: log.With(zap.String("repository", "bill_combo")),
	}
}

func (r *billComboRepository) Create(ctx context.Context, combo *entity.BillCombo) error {
	query := `
		INSERT INTO bill_combos (id, bill_id, combo_id, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		combo.ID,
		combo.BillID,
		combo.ComboID,
		combo.Quantity,
		combo.Price,
		combo.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create bill combo",
			zap.Error(err),
			zap.String("bill_id", combo.BillID.String()),
			zap.String("combo_id", combo.ComboID.String()),
		)
		return fmt.Errorf("create bill combo: %w", err)
	}

	return nil
}

func (r *billComboRepository) FindByBillID(ctx context.Context, billID uuid.UUID) ([]*entity.BillCombo, error) {
	query := `
		SELECT id, bill_id, combo_id, quantity, price, created_at
		FROM bill_combos
		WHERE bill_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, billID)
	if err != nil {
		r.log.Error("Failed to list bill combos",
			zap.Error(err),
			zap.String("bill_id", billID.String()),
		)
		return nil, fmt.Errorf("list bill combos: %w", err)
	}
	defer rows.Close()

	var combos []*entity.BillCombo
	for rows.Next() {
		var combo entity.BillCombo
		err := rows.Scan(
			&combo.ID,
			&combo.BillID,
			&combo.ComboID,
			&combo.Quantity,
			&combo.Price,
			&combo.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bill combo row: %w", err)
		}
		combos = append(combos, &combo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bill combo rows: %w", err)
	}

	return combos, nil
}
