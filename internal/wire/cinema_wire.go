package wire

import (
	"cineplex/internal/adaptor"
	"cineplex/internal/data/repository"
	"cineplex/pkg/middleware"
	"cineplex/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCinema(
	r chi.Router,
	cinemaHandler *adaptor.CinemaHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/cinemas", cinemaHandler.List)
	r.Get("/api/cinemas/{id}/auditoriums", cinemaHandler.ListAuditoriums)
	r.Get("/api/auditoriums/{id}/seats", cinemaHandler.ListSeats)

	// ==================== ADMIN ROUTES ====================
	admin := r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Admin(repo.User, log),
	)
	admin.Post("/api/admin/cinemas", cinemaHandler.Create)
	admin.Post("/api/admin/cinemas/{id}/auditoriums", cinemaHandler.CreateAuditorium)
	admin.Post("/api/admin/auditoriums/{id}/seats", cinemaHandler.CreateSeats)
}
