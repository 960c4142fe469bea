package repository

import (
	"cineplex/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Token      TokenConfirmRepository
	Movie      MovieRepository
	Cinema     CinemaRepository
	Auditorium AuditoriumRepository
	Seat       SeatRepository
	Showtime   ShowtimeRepository
	Price      BaseTicketPriceRepository
	Bill       BillRepository
	BillSeat   BillSeatRepository
	BillCombo  BillComboRepository
	Combo      ComboRepository
	Coupon     CouponRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Token:      NewTokenConfirmRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		Cinema:     NewCinemaRepository(db, log),
		Auditorium: NewAuditoriumRepository(db, log),
		Seat:       NewSeatRepository(db, log),
		Showtime:   NewShowtimeRepository(db, log),
		Price:      NewBaseTicketPriceRepository(db, log),
		Bill:       NewBillRepository(db, log),
		BillSeat:   NewBillSeatRepository(db, log),
		BillCombo:  NewBillComboRepository(db, log),
		Combo:      NewComboRepository(db, log),
		Coupon:     NewCouponRepository(db, log),
	}
}
