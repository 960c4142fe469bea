package entity

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	Base
	Code            string `db:"code"`
	DiscountPercent int    `db:"discount_percent"`
	Active          bool   `db:"active"`
}

// CouponUser records a redemption. One row per (coupon, user).
type CouponUser struct {
	BaseSimple
	CouponID uuid.UUID `db:"coupon_id"`
	UserID   uuid.UUID `db:"user_id"`
	UsedAt   time.Time `db:"used_at"`
}
