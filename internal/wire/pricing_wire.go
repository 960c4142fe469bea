package wire

import (
	"cineplex/internal/adaptor"
	"cineplex/internal/data/repository"
	"cineplex/pkg/middleware"
	"cineplex/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePricing(
	r chi.Router,
	pricingHandler *adaptor.PricingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/ticket-price", pricingHandler.TicketPrice)

	// ==================== ADMIN ROUTES ====================
	admin := r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Admin(repo.User, log),
	)
	admin.Put("/api/admin/base-prices", pricingHandler.Upsert)
	admin.Get("/api/admin/cinemas/{id}/base-prices", pricingHandler.ListByCinema)
}
