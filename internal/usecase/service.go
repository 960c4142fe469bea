package usecase

import (
	"cineplex/internal/data/repository"
	"cineplex/pkg/mailer"
	"cineplex/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Movie    MovieService
	Cinema   CinemaService
	Showtime ShowtimeService
	Pricing  PricingService
	Bill     BillService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	pricing := NewPricingService(repo, log)

	return &Service{
		Auth:     NewAuthService(repo, config, mail, log),
		Movie:    NewMovieService(repo, log),
		Cinema:   NewCinemaService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Pricing:  pricing,
		Bill:     NewBillService(repo, pricing, log),
	}
}
