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

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/cinemas
func (h *CinemaHandler) List(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.service.ListCinemas(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list cinemas")
		return
	}

	utils.ResponseSuccess(w, "Cinemas retrieved", cinemas)
}

// Create handles POST /api/admin/cinemas
func (h *CinemaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, "Cinema created", cinema)
}

// ListAuditoriums handles GET /api/cinemas/{id}/auditoriums
func (h *CinemaHandler) ListAuditoriums(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")

	auditoriums, err := h.service.ListAuditoriums(r.Context(), cinemaID)
	if err != nil {
		writeServiceError(w, h.log, err, "list auditoriums")
		return
	}

	utils.ResponseSuccess(w, "Auditoriums retrieved", auditoriums)
}

// CreateAuditorium handles POST /api/admin/cinemas/{id}/auditoriums
func (h *CinemaHandler) CreateAuditorium(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")

	var req request.CreateAuditoriumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auditorium, err := h.service.CreateAuditorium(r.Context(), cinemaID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create auditorium")
		return
	}

	utils.ResponseCreated(w, "Auditorium created", auditorium)
}

// ListSeats handles GET /api/auditoriums/{id}/seats
func (h *CinemaHandler) ListSeats(w http.ResponseWriter, r *http.Request) {
	auditoriumID := chi.URLParam(r, "id")

	seats, err := h.service.ListSeats(r.Context(), auditoriumID)
	if err != nil {
		writeServiceError(w, h.log, err, "list seats")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved", seats)
}

// CreateSeats handles POST /api/admin/auditoriums/{id}/seats
func (h *CinemaHandler) CreateSeats(w http.ResponseWriter, r *http.Request) {
	auditoriumID := chi.URLParam(r, "id")

	var req request.CreateSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seats, err := h.service.CreateSeats(r.Context(), auditoriumID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create seats")
		return
	}

	utils.ResponseCreated(w, "Seats created", seats)
}
