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

type ComboRepository interface {
	Create(ctx context.Context, combo *entity.Combo) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Combo, error)
	FindAll(ctx context.Context) ([]*entity.Combo, error)
	Update(ctx context.Context, combo *entity.Combo) error
}

type comboRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewComboRepository(db database.PgxIface, log *zap.Logger) ComboRepository {
	return &comboRepository{
		db:  db,
		log: log.With(zap.String("repository", "combo")),
	}
}

func (r *comboRepository) Create(ctx context.Context, combo *entity.Combo) error {
	query := `
		INSERT INTO combos (id, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		combo.ID,
		combo.Name,
		combo.Description,
		combo.Price,
		combo.CreatedAt,
		combo.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create combo",
			zap.Error(err),
			zap.String("name", combo.Name),
		)
		return fmt.Errorf("create combo %s: %w", combo.Name, err)
	}

	return nil
}

func (r *comboRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Combo, error) {
	query := `
		SELECT id, name, description, price, created_at, updated_at
		FROM combos
		WHERE id = $1
	`

	var combo entity.Combo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&combo.ID,
		&combo.Name,
		&combo.Description,
		&combo.Price,
		&combo.CreatedAt,
		&combo.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find combo by ID",
			zap.Error(err),
			zap.String("combo_id", id.String()),
		)
		return nil, fmt.Errorf("find combo %s: %w", id.String(), err)
	}

	return &combo, nil
}

func (r *comboRepository) FindAll(ctx context.Context) ([]*entity.Combo, error) {
	query := `
		SELECT id, name, description, price, created_at, updated_at
		FROM combos
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list combos", zap.Error(err))
		return nil, fmt.Errorf("list combos: %w", err)
	}
	defer rows.Close()

	var combos []*entity.Combo
	for rows.Next() {
		var combo entity.Combo
		err := rows.Scan(
			&combo.ID,
			&combo.Name,
			&combo.Description,
			&combo.Price,
			&combo.CreatedAt,
			&combo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan combo row: %w", err)
		}
		combos = append(combos, &combo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate combo rows: %w", err)
	}

	return combos, nil
}

func (r *comboRepository) Update(ctx context.Context, combo *entity.Combo) error {
	query := `
		UPDATE combos
		SET name = $2, description = $3, price = $4, updated_at = $5
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query,
		combo.ID,
		combo.Name,
		combo.Description,
		combo.Price,
		combo.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update combo",
			zap.Error(err),
			zap.String("combo_id", combo.ID.String()),
		)
		return fmt.Errorf("update combo %s: %w", combo.ID.String(), err)
	}

	return nil
}
