package entity

import (
	"time"

	"github.com/google/uuid"
)

type GraphicsType string

const (
	GraphicsType2D GraphicsType = "TWO_D"
	GraphicsType3D GraphicsType = "THREE_D"
)

type ScreeningTimeType string

const (
	ScreeningTimeEarly   ScreeningTimeType = "EARLY"
	ScreeningTimeDaytime ScreeningTimeType = "DAYTIME"
	ScreeningTimeLate    ScreeningTimeType = "LATE"
)

type DayType string

const (
	DayTypeWeekday DayType = "WEEKDAY"
	DayTypeWeekend DayType = "WEEKEND"
	DayTypeHoliday DayType = "HOLIDAY"
)

type Showtime struct {
	Base
	MovieID           uuid.UUID         `db:"movie_id"`
	AuditoriumID      uuid.UUID         `db:"auditorium_id"`
	ScreeningDate     time.Time         `db:"screening_date"`
	StartTime         time.Time         `db:"start_time"`
	EndTime           time.Time         `db:"end_time"`
	GraphicsType      GraphicsType      `db:"graphics_type"`
	ScreeningTimeType ScreeningTimeType `db:"screening_time_type"`
	DayType           DayType           `db:"day_type"`
}

// ScreeningTimeFor classifies a start time into a screening slot.
func ScreeningTimeFor(start time.Time) ScreeningTimeType {
	hour := start.Hour()
	switch {
	case hour < 12:
		return ScreeningTimeEarly
	case hour < 18:
		return ScreeningTimeDaytime
	default:
		return ScreeningTimeLate
	}
}

// DayTypeFor classifies a screening date. Holidays are seeded by the
// admin and override the weekday rule at scheduling time.
func DayTypeFor(date time.Time) DayType {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return DayTypeWeekend
	}
	return DayTypeWeekday
}
