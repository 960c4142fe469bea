package response

import (
	"cineplex/internal/data/entity"
)

type CinemaResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Address string `json:"address"`
}

type AuditoriumResponse struct {
	ID         string                `json:"id"`
	CinemaID   string                `json:"cinema_id"`
	Name       string                `json:"name"`
	Type       entity.AuditoriumType `json:"type"`
	TotalSeats int                   `json:"total_seats"`
}

type SeatResponse struct {
	ID     string          `json:"id"`
	Number string          `json:"number"`
	Type   entity.SeatType `json:"type"`
}

// Helper converters
func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:      cinema.ID.String(),
		Name:    cinema.Name,
		Slug:    cinema.Slug,
		Address: cinema.Address,
	}
}

func CinemasToResponse(cinemas []*entity.Cinema) []CinemaResponse {
	responses := make([]CinemaResponse, 0, len(cinemas))
	for _, cinema := range cinemas {
		responses = append(responses, CinemaToResponse(cinema))
	}
	return responses
}

func AuditoriumToResponse(auditorium *entity.Auditorium) AuditoriumResponse {
	return AuditoriumResponse{
		ID:         auditorium.ID.String(),
		CinemaID:   auditorium.CinemaID.String(),
		Name:       auditorium.Name,
		Type:       auditorium.Type,
		TotalSeats: auditorium.TotalSeats,
	}
}

func AuditoriumsToResponse(auditoriums []*entity.Auditorium) []AuditoriumResponse {
	responses := make([]AuditoriumResponse, 0, len(auditoriums))
	for _, auditorium := range auditoriums {
		responses = append(responses, AuditoriumToResponse(auditorium))
	}
	return responses
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:     seat.ID.String(),
		Number: seat.Number(),
		Type:   seat.Type,
	}
}

func SeatsToResponse(seats []*entity.Seat) []SeatResponse {
	responses := make([]SeatResponse, 0, len(seats))
	for _, seat := range seats {
		responses = append(responses, SeatToResponse(seat))
	}
	return responses
}
