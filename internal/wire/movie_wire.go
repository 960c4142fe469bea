package wire

import (
	"cineplex/internal/adaptor"
	"cineplex/internal/data/repository"
	"cineplex/pkg/middleware"
	"cineplex/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies", movieHandler.ListPublished)
	r.Get("/api/movies/{slug}", movieHandler.GetBySlug)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, log)).
		Post("/api/movies/{id}/rating", movieHandler.Rate)

	// ==================== ADMIN ROUTES ====================
	admin := r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Admin(repo.User, log),
	)
	admin.Get("/api/admin/movies", movieHandler.ListAll)
	admin.Post("/api/admin/movies", movieHandler.Create)
	admin.Put("/api/admin/movies/{id}", movieHandler.Update)
}
