package entity

import "github.com/google/uuid"

type AuditoriumType string

const (
	AuditoriumTypeStandard  AuditoriumType = "STANDARD"
	AuditoriumTypeIMAX      AuditoriumType = "IMAX"
	AuditoriumTypeGoldClass AuditoriumType = "GOLD_CLASS"
)

type Auditorium struct {
	Base
	CinemaID   uuid.UUID      `db:"cinema_id"`
	Name       string         `db:"name"`
	Type       AuditoriumType `db:"type"`
	TotalSeats int            `db:"total_seats"`
}
