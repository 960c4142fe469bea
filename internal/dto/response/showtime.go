package response

import (
	"cineplex/internal/data/entity"
)

type ShowtimeResponse struct {
	ID                string                   `json:"id"`
	MovieID           string                   `json:"movie_id"`
	AuditoriumID      string                   `json:"auditorium_id"`
	ScreeningDate     string                   `json:"screening_date"`
	StartTime         string                   `json:"start_time"`
	EndTime           string                   `json:"end_time"`
	GraphicsType      entity.GraphicsType      `json:"graphics_type"`
	ScreeningTimeType entity.ScreeningTimeType `json:"screening_time_type"`
	DayType           entity.DayType           `json:"day_type"`
}

// Helper converters
func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:                showtime.ID.String(),
		MovieID:           showtime.MovieID.String(),
		AuditoriumID:      showtime.AuditoriumID.String(),
		ScreeningDate:     showtime.ScreeningDate.Format("2006-01-02"),
		StartTime:         showtime.StartTime.Format("15:04"),
		EndTime:           showtime.EndTime.Format("15:04"),
		GraphicsType:      showtime.GraphicsType,
		ScreeningTimeType: showtime.ScreeningTimeType,
		DayType:           showtime.DayType,
	}
}

func ShowtimesToResponse(showtimes []*entity.Showtime) []ShowtimeResponse {
	responses := make([]ShowtimeResponse, 0, len(showtimes))
	for _, showtime := range showtimes {
		responses = append(responses, ShowtimeToResponse(showtime))
	}
	return responses
}
