package entity

import "github.com/google/uuid"

type BillStatus string

const (
	BillStatusPending   BillStatus = "PENDING"
	BillStatusPaid      BillStatus = "PAID"
	BillStatusCancelled BillStatus = "CANCELLED"
)

type Bill struct {
	Base
	BillCode   string     `db:"bill_code"`
	UserID     uuid.UUID  `db:"user_id"`
	ShowtimeID uuid.UUID  `db:"showtime_id"`
	TotalPrice int64      `db:"total_price"`
	Status     BillStatus `db:"status"`
}
