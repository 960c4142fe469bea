package request

type CreateBillRequest struct {
	ShowtimeID string          `json:"showtime_id" validate:"required,uuid4"`
	SeatIDs    []string        `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
	Combos     []BillComboSpec `json:"combos,omitempty" validate:"omitempty,dive"`
}

type BillComboSpec struct {
	ComboID  string `json:"combo_id" validate:"required,uuid4"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type AddComboRequest struct {
	ComboID  string `json:"combo_id" validate:"required,uuid4"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,min=1,max=50"`
}

type ConfirmPaymentRequest struct {
	ResponseCode string `json:"response_code" validate:"required"`
}

type CreateComboRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price" validate:"required,gt=0"`
}
