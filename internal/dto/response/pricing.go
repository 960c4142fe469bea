package response

import (
	"cineplex/internal/data/entity"
)

type BasePriceResponse struct {
	ID                string                   `json:"id"`
	CinemaID          string                   `json:"cinema_id"`
	AuditoriumType    entity.AuditoriumType    `json:"auditorium_type"`
	DayType           entity.DayType           `json:"day_type"`
	ScreeningTimeType entity.ScreeningTimeType `json:"screening_time_type"`
	GraphicsType      entity.GraphicsType      `json:"graphics_type"`
	SeatType          entity.SeatType          `json:"seat_type"`
	Price             int64                    `json:"price"`
}

type TicketPriceResponse struct {
	ShowtimeID string `json:"showtime_id"`
	SeatID     string `json:"seat_id"`
	Price      int64  `json:"price"`
}

// Helper converters
func BasePriceToResponse(price *entity.BaseTicketPrice) BasePriceResponse {
	return BasePriceResponse{
		ID:                price.ID.String(),
		CinemaID:          price.CinemaID.String(),
		AuditoriumType:    price.AuditoriumType,
		DayType:           price.DayType,
		ScreeningTimeType: price.ScreeningTimeType,
		GraphicsType:      price.GraphicsType,
		SeatType:          price.SeatType,
		Price:             price.Price,
	}
}

func BasePricesToResponse(prices []*entity.BaseTicketPrice) []BasePriceResponse {
	responses := make([]BasePriceResponse, 0, len(prices))
	for _, price := range prices {
		responses = append(responses, BasePriceToResponse(price))
	}
	return responses
}
