package entity

import (
	"strconv"

	"github.com/google/uuid"
)

type SeatType string

const (
	SeatTypeNormal SeatType = "NORMAL"
	SeatTypeVIP    SeatType = "VIP"
	SeatTypeCouple SeatType = "COUPLE"
)

type Seat struct {
	Base
	AuditoriumID uuid.UUID `db:"auditorium_id"`
	SeatRow      string    `db:"seat_row"`    // A, B, C, etc.
	SeatColumn   int       `db:"seat_column"` // 1, 2, 3, etc.
	Type         SeatType  `db:"type"`
}

// Number renders the display label, e.g. A1, B12.
func (s *Seat) Number() string {
	return s.SeatRow + strconv.Itoa(s.SeatColumn)
}
