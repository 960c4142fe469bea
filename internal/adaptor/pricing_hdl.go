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

type PricingHandler struct {
	service usecase.PricingService
	log     *zap.Logger
}

func NewPricingHandler(service usecase.PricingService, log *zap.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		log:     log,
	}
}

// TicketPrice handles GET /api/ticket-price?showtime_id=...&seat_id=...
func (h *PricingHandler) TicketPrice(w http.ResponseWriter, r *http.Request) {
	showtimeID := r.URL.Query().Get("showtime_id")
	seatID := r.URL.Query().Get("seat_id")
	if showtimeID == "" || seatID == "" {
		utils.ResponseBadRequest(w, "showtime_id and seat_id are required", nil)
		return
	}

	price, err := h.service.GetTicketPrice(r.Context(), showtimeID, seatID)
	if err != nil {
		writeServiceError(w, h.log, err, "get ticket price")
		return
	}

	utils.ResponseSuccess(w, "Ticket price resolved", price)
}

// Upsert handles PUT /api/admin/base-prices
func (h *PricingHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertBasePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	price, err := h.service.UpsertBasePrice(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "upsert base price")
		return
	}

	utils.ResponseSuccess(w, "Base price saved", price)
}

// ListByCinema handles GET /api/admin/cinemas/{id}/base-prices
func (h *PricingHandler) ListByCinema(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")

	prices, err := h.service.ListByCinema(r.Context(), cinemaID)
	if err != nil {
		writeServiceError(w, h.log, err, "list base prices")
		return
	}

	utils.ResponseSuccess(w, "Base prices retrieved", prices)
}
