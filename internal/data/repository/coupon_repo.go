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

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
	HasUsed(ctx context.Context, couponID, userID uuid.UUID) (bool, error)
	CreateUsage(ctx context.Context, usage *entity.CouponUser) error
}

type couponRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCouponRepository(db database.PgxIface, log *zap.Logger) CouponRepository {
	return &couponRepository{
		db:  db,
		log: log.With(zap.String("repository", "coupon")),
	}
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	query := `
		INSERT INTO coupons (id, code, discount_percent, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		coupon.ID,
		coupon.Code,
		coupon.DiscountPercent,
		coupon.Active,
		coupon.CreatedAt,
		coupon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create coupon",
			zap.Error(err),
			zap.String("code", coupon.Code),
		)
		return fmt.Errorf("create coupon %s: %w", coupon.Code, err)
	}

	return nil
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	query := `
		SELECT id, code, discount_percent, active, created_at, updated_at
		FROM coupons
		WHERE code = $1
	`

	var coupon entity.Coupon
	err := r.db.QueryRow(ctx, query, code).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.DiscountPercent,
		&coupon.Active,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find coupon by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find coupon %s: %w", code, err)
	}

	return &coupon, nil
}

func (r *couponRepository) HasUsed(ctx context.Context, couponID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM coupon_users WHERE coupon_id = $1 AND user_id = $2
		)
	`

	var used bool
	err := r.db.QueryRow(ctx, query, couponID, userID).Scan(&used)
	if err != nil {
		r.log.Error("Failed to check coupon usage",
			zap.Error(err),
			zap.String("coupon_id", couponID.String()),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("check coupon usage: %w", err)
	}

	return used, nil
}

func (r *couponRepository) CreateUsage(ctx context.Context, usage *entity.CouponUser) error {
	query := `
		INSERT INTO coupon_users (id, coupon_id, user_id, used_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		usage.ID,
		usage.CouponID,
		usage.UserID,
		usage.UsedAt,
		usage.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to record coupon usage",
			zap.Error(err),
			zap.String("coupon_id", usage.CouponID.String()),
			zap.String("user_id", usage.UserID.String()),
		)
		return fmt.Errorf("record coupon usage: %w", err)
	}

	return nil
}
