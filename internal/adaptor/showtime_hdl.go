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

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/showtimes?movie_id=...&date=...
func (h *ShowtimeHandler) List(w http.ResponseWriter, r *http.Request) {
	movieID := r.URL.Query().Get("movie_id")
	date := r.URL.Query().Get("date")
	if movieID == "" || date == "" {
		utils.ResponseBadRequest(w, "movie_id and date are required", nil)
		return
	}

	showtimes, err := h.service.ListForMovie(r.Context(), movieID, date)
	if err != nil {
		writeServiceError(w, h.log, err, "list showtimes")
		return
	}

	utils.ResponseSuccess(w, "Showtimes retrieved", showtimes)
}

// Get handles GET /api/showtimes/{id}
func (h *ShowtimeHandler) Get(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	showtime, err := h.service.GetShowtime(r.Context(), showtimeID)
	if err != nil {
		writeServiceError(w, h.log, err, "get showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime retrieved", showtime)
}

// Create handles POST /api/admin/showtimes
func (h *ShowtimeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "Showtime created", showtime)
}
