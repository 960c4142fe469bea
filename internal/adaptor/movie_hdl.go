package adaptor

import (
	"encoding/json"
	"net/http"

	"cineplex/internal/dto/request"
	"cineplex/internal/usecase"
	"cineplex/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log,
	}
}

// ListPublished handles GET /api/movies
func (h *MovieHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListPublished(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved", movies)
}

// GetBySlug handles GET /api/movies/{slug}
func (h *MovieHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	movieSlug := chi.URLParam(r, "slug")

	movie, err := h.service.GetBySlug(r.Context(), movieSlug)
	if err != nil {
		writeServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved", movie)
}

// Rate handles POST /api/movies/{id}/rating
func (h *MovieHandler) Rate(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.RateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.RateMovie(r.Context(), movieID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "rate movie")
		return
	}

	utils.ResponseSuccess(w, "Rating recorded", movie)
}

// Create handles POST /api/admin/movies
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created", movie)
}

// Update handles PUT /api/admin/movies/{id}
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.UpdateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated", movie)
}

// ListAll handles GET /api/admin/movies
func (h *MovieHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved", movies)
}
