package wire

import (
	"cineplex/internal/adaptor"
	"cineplex/internal/data/repository"
	"cineplex/pkg/middleware"
	"cineplex/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBill(
	r chi.Router,
	billHandler *adaptor.BillHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/combos", billHandler.ListCombos)

	// ==================== PROTECTED ROUTES ====================
	authed := r.With(middleware.AuthSession(repo.Session, log))
	authed.Post("/api/bills", billHandler.Create)
	authed.Get("/api/bills", billHandler.List)
	authed.Get("/api/bills/{id}", billHandler.Get)
	authed.Post("/api/bills/{id}/combos", billHandler.AddCombo)
	authed.Post("/api/bills/{id}/coupon", billHandler.ApplyCoupon)
	authed.Post("/api/bills/{id}/payment", billHandler.ConfirmPayment)

	// ==================== ADMIN ROUTES ====================
	admin := r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Admin(repo.User, log),
	)
	admin.Post("/api/admin/combos", billHandler.CreateCombo)
}
