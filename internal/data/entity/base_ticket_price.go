package entity

import "github.com/google/uuid"

// BaseTicketPrice holds one price per (cinema, auditorium type, day
// type, screening time, graphics, seat type) tuple. Every valid
// combination must be seeded; there is no fallback tier.
type BaseTicketPrice struct {
	Base
	CinemaID          uuid.UUID         `db:"cinema_id"`
	AuditoriumType    AuditoriumType    `db:"auditorium_type"`
	DayType           DayType           `db:"day_type"`
	ScreeningTimeType ScreeningTimeType `db:"screening_time_type"`
	GraphicsType      GraphicsType      `db:"graphics_type"`
	SeatType          SeatType          `db:"seat_type"`
	Price             int64             `db:"price"`
}

// PriceKey identifies a base ticket price tuple.
type PriceKey struct {
	CinemaID          uuid.UUID
	AuditoriumType    AuditoriumType
	DayType           DayType
	ScreeningTimeType ScreeningTimeType
	GraphicsType      GraphicsType
	SeatType          SeatType
}
