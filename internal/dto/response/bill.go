package response

import (
	"time"

	"cineplex/internal/data/entity"
)

type BillResponse struct {
	ID         string            `json:"id"`
	BillCode   string            `json:"bill_code"`
	ShowtimeID string            `json:"showtime_id"`
	TotalPrice int64             `json:"total_price"`
	Status     entity.BillStatus `json:"status"`
	Seats      []BillSeatLine    `json:"seats,omitempty"`
	Combos     []BillComboLine   `json:"combos,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type BillSeatLine struct {
	SeatID string `json:"seat_id"`
	Price  int64  `json:"price"`
}

type BillComboLine struct {
	ComboID  string `json:"combo_id"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type ComboResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price"`
}

// Helper converters
func BillToResponse(bill *entity.Bill, seats []*entity.BillSeat, combos []*entity.BillCombo) BillResponse {
	resp := BillResponse{
		ID:         bill.ID.String(),
		BillCode:   bill.BillCode,
		ShowtimeID: bill.ShowtimeID.String(),
		TotalPrice: bill.TotalPrice,
		Status:     bill.Status,
		CreatedAt:  bill.CreatedAt,
	}

	for _, seat := range seats {
		resp.Seats = append(resp.Seats, BillSeatLine{
			SeatID: seat.SeatID.String(),
			Price:  seat.Price,
		})
	}

	for _, combo := range combos {
		resp.Combos = append(resp.Combos, BillComboLine{
			ComboID:  combo.ComboID.String(),
			Quantity: combo.Quantity,
			Price:    combo.Price,
		})
	}

	return resp
}

func ComboToResponse(combo *entity.Combo) ComboResponse {
	return ComboResponse{
		ID:          combo.ID.String(),
		Name:        combo.Name,
		Description: combo.Description,
		Price:       combo.Price,
	}
}

func CombosToResponse(combos []*entity.Combo) []ComboResponse {
	responses := make([]ComboResponse, 0, len(combos))
	for _, combo := range combos {
		responses = append(responses, ComboToResponse(combo))
	}
	return responses
}
