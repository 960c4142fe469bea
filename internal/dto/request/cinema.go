package request

type CreateCinemaRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"required,min=1,max=255"`
}

type CreateAuditoriumRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Type string `json:"type" validate:"required,oneof=STANDARD IMAX GOLD_CLASS"`
}

type CreateSeatsRequest struct {
	Seats []SeatSpec `json:"seats" validate:"required,min=1,dive"`
}

type SeatSpec struct {
	Row    string `json:"row" validate:"required,min=1,max=2"`
	Column int    `json:"column" validate:"required,gt=0"`
	Type   string `json:"type" validate:"required,oneof=NORMAL VIP COUPLE"`
}
