package request

type UpsertBasePriceRequest struct {
	CinemaID          string `json:"cinema_id" validate:"required,uuid4"`
	AuditoriumType    string `json:"auditorium_type" validate:"required,oneof=STANDARD IMAX GOLD_CLASS"`
	DayType           string `json:"day_type" validate:"required,oneof=WEEKDAY WEEKEND HOLIDAY"`
	ScreeningTimeType string `json:"screening_time_type" validate:"required,oneof=EARLY DAYTIME LATE"`
	GraphicsType      string `json:"graphics_type" validate:"required,oneof=TWO_D THREE_D"`
	SeatType          string `json:"seat_type" validate:"required,oneof=NORMAL VIP COUPLE"`
	Price             int64  `json:"price" validate:"required,gt=0"`
}
