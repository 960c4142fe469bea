package request

type CreateShowtimeRequest struct {
	MovieID       string `json:"movie_id" validate:"required,uuid4"`
	AuditoriumID  string `json:"auditorium_id" validate:"required,uuid4"`
	ScreeningDate string `json:"screening_date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" validate:"required,datetime=15:04"`
	GraphicsType  string `json:"graphics_type" validate:"required,oneof=TWO_D THREE_D"`
	Holiday       bool   `json:"holiday"`
}