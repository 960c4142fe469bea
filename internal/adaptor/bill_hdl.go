package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cineplex/internal/dto/request"
	"cineplex/internal/usecase"
	"cineplex/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BillHandler struct {
	service usecase.BillService
	log     *zap.Logger
}

func NewBillHandler(service usecase.BillService, log *zap.Logger) *BillHandler {
	return &BillHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/bills
func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	var req request.CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bill, err := h.service.CreateBill(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create bill")
		return
	}

	utils.ResponseCreated(w, "Bill created", bill)
}

// AddCombo handles POST /api/bills/{id}/combos
func (h *BillHandler) AddCombo(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	billID := chi.URLParam(r, "id")

	var req request.AddComboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bill, err := h.service.AddCombo(r.Context(), userID, billID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add combo")
		return
	}

	utils.ResponseSuccess(w, "Combo added", bill)
}

// ApplyCoupon handles POST /api/bills/{id}/coupon
func (h *BillHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	billID := chi.URLParam(r, "id")

	var req request.ApplyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bill, err := h.service.ApplyCoupon(r.Context(), userID, billID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "apply coupon")
		return
	}

	utils.ResponseSuccess(w, "Coupon applied", bill)
}

// ConfirmPayment handles POST /api/bills/{id}/payment
func (h *BillHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	billID := chi.URLParam(r, "id")

	var req request.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bill, err := h.service.ConfirmPayment(r.Context(), userID, billID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "confirm payment")
		return
	}

	utils.ResponseSuccess(w, "Payment processed", bill)
}

// Get handles GET /api/bills/{id}
func (h *BillHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	billID := chi.URLParam(r, "id")

	bill, err := h.service.GetBill(r.Context(), userID, billID)
	if err != nil {
		writeServiceError(w, h.log, err, "get bill")
		return
	}

	utils.ResponseSuccess(w, "Bill retrieved", bill)
}

// List handles GET /api/bills?page=...&per_page=...
func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	page := request.PaginatedRequest{Page: 1, PerPage: 10}
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page.Page = n
		}
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page.PerPage = n
		}
	}

	bills, err := h.service.ListUserBills(r.Context(), userID, &page)
	if err != nil {
		writeServiceError(w, h.log, err, "list bills")
		return
	}

	utils.ResponseSuccess(w, "Bills retrieved", bills)
}

// ListCombos handles GET /api/combos
func (h *BillHandler) ListCombos(w http.ResponseWriter, r *http.Request) {
	combos, err := h.service.ListCombos(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list combos")
		return
	}

	utils.ResponseSuccess(w, "Combos retrieved", combos)
}

// CreateCombo handles POST /api/admin/combos
func (h *BillHandler) CreateCombo(w http.ResponseWriter, r *http.Request) {
	var req request.CreateComboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	combo, err := h.service.CreateCombo(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create combo")
		return
	}

	utils.ResponseCreated(w, "Combo created", combo)
}
