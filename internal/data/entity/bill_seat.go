package entity

import "github.com/google/uuid"

// BillSeat is a ticket line on a bill. Price is resolved from the base
// ticket price table when the bill is created and stored as-is.
type BillSeat struct {
	BaseSimple
	BillID uuid.UUID `db:"bill_id"`
	SeatID uuid.UUID `db:"seat_id"`
	Price  int64     `db:"price"`
}
