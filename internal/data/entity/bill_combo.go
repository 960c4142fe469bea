package entity

import "github.com/google/uuid"

// BillCombo is a combo line on a bill. Price is quantity times the
// combo unit price at creation time; later combo price changes do not
// touch existing lines.
type BillCombo struct {
	BaseSimple
	BillID   uuid.UUID `db:"bill_id"`
	ComboID  uuid.UUID `db:"combo_id"`
	Quantity int       `db:"quantity"`
	Price    int64     `db:"price"`
}
