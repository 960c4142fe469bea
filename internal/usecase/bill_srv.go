package usecase

import (
	"context"
	"fmt"
	"time"

	"cineplex/internal/data/entity"
	"cineplex/internal/data/repository"
	"cineplex/internal/dto/request"
	"cineplex/internal/dto/response"
	"cineplex/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Payment gateways report the result as an opaque response code; "00"
// is the only code that settles a bill.
const paymentCodeApproved = "00"

type BillService interface {
	CreateBill(ctx context.Context, userID uuid.UUID, req *request.CreateBillRequest) (*response.BillResponse, error)
	AddCombo(ctx context.Context, userID uuid.UUID, billID string, req *request.AddComboRequest) (*response.BillResponse, error)
	ApplyCoupon(ctx context.Context, userID uuid.UUID, billID string, req *request.ApplyCouponRequest) (*response.BillResponse, error)
	ConfirmPayment(ctx context.Context, userID uuid.UUID, billID string, req *request.ConfirmPaymentRequest) (*response.BillResponse, error)
	GetBill(ctx context.Context, userID uuid.UUID, billID string) (*response.BillResponse, error)
	ListUserBills(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BillResponse], error)
	CreateCombo(ctx context.Context, req *request.CreateComboRequest) (*response.ComboResponse, error)
	ListCombos(ctx context.Context) ([]response.ComboResponse, error)
}

type billService struct {
	repo    *repository.Repository
	pricing PricingService
	log     *zap.Logger
}

func NewBillService(repo *repository.Repository, pricing PricingService, log *zap.Logger) BillService {
	return &billService{
		repo:    repo,
		pricing: pricing,
		log:     log,
	}
}

func (s *billService) CreateBill(ctx context.Context, userID uuid.UUID, req *request.CreateBillRequest) (*response.BillResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create bill validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	showtimeID, err := utils.ParseUUID(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("showtime id: %w", utils.ErrInvalidInput)
	}

	// 2. Showtime must exist
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", req.ShowtimeID, utils.ErrNotFound)
	}

	// 3. Resolve every seat and its price before writing anything
	now := time.Now()
	bill := &entity.Bill{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BillCode:   utils.GenerateBillCode(),
		UserID:     userID,
		ShowtimeID: showtime.ID,
		Status:     entity.BillStatusPending,
	}

	var billSeats []*entity.BillSeat
	var total int64

	for _, rawSeatID := range req.SeatIDs {
		seatID, err := utils.ParseUUID(rawSeatID)
		if err != nil {
			return nil, fmt.Errorf("seat id %s: %w", rawSeatID, utils.ErrInvalidInput)
		}

		seat, err := s.repo.Seat.FindByID(ctx, seatID)
		if err != nil {
			return nil, fmt.Errorf("find seat: %w", err)
		}
		if seat == nil {
			return nil, fmt.Errorf("seat %s: %w", rawSeatID, utils.ErrNotFound)
		}

		taken, err := s.repo.BillSeat.ExistsForShowtime(ctx, showtime.ID, seat.ID)
		if err != nil {
			return nil, fmt.Errorf("check seat availability: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("seat %s already booked: %w", seat.Number(), utils.ErrInvalidInput)
		}

		price, err := s.pricing.ResolveSeatPrice(ctx, showtime, seat)
		if err != nil {
			return nil, err
		}

		billSeats = append(billSeats, &entity.BillSeat{
			BaseSimple: entity.BaseSimple{
				ID:        utils.GenerateUUID(),
				CreatedAt: now,
			},
			BillID: bill.ID,
			SeatID: seat.ID,
			Price:  price,
		})
		total += price
	}

	// 4. Resolve requested combo lines, unit price captured now
	var billCombos []*entity.BillCombo
	for _, spec := range req.Combos {
		comboID, err := utils.ParseUUID(spec.ComboID)
		if err != nil {
			return nil, fmt.Errorf("combo id %s: %w", spec.ComboID, utils.ErrInvalidInput)
		}

		combo, err := s.repo.Combo.FindByID(ctx, comboID)
		if err != nil {
			return nil, fmt.Errorf("find combo: %w", err)
		}
		if combo == nil {
			return nil, fmt.Errorf("combo %s: %w", spec.ComboID, utils.ErrNotFound)
		}

		linePrice := combo.Price * int64(spec.Quantity)
		billCombos = append(billCombos, &entity.BillCombo{
			BaseSimple: entity.BaseSimple{
				ID:        utils.GenerateUUID(),
				CreatedAt: now,
			},
			BillID:   bill.ID,
			ComboID:  combo.ID,
			Quantity: spec.Quantity,
			Price:    linePrice,
		})
		total += linePrice
	}

	bill.TotalPrice = total

	// 5. Persist bill then its lines
	if err := s.repo.Bill.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("create bill: %w", err)
	}
	if err := s.repo.BillSeat.CreateBatch(ctx, billSeats); err != nil {
		return nil, fmt.Errorf("create bill seats: %w", err)
	}
	for _, line := range billCombos {
		if err := s.repo.BillCombo.Create(ctx, line); err != nil {
			return nil, fmt.Errorf("create bill combo: %w", err)
		}
	}

	s.log.Info("Bill created",
		zap.String("bill_id", bill.ID.String()),
		zap.String("bill_code", bill.BillCode),
		zap.String("user_id", userID.String()),
		zap.Int("seats", len(billSeats)),
		zap.Int("combos", len(billCombos)),
		zap.Int64("total", total))

	resp := response.BillToResponse(bill, billSeats, billCombos)
	return &resp, nil
}

func (s *billService) AddCombo(ctx context.Context, userID uuid.UUID, billID string, req *request.AddComboRequest) (*response.BillResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	comboID, err := utils.ParseUUID(req.ComboID)
	if err != nil {
		return nil, fmt.Errorf("combo id: %w", utils.ErrInvalidInput)
	}

	// 2. Combo first, then the bill; either missing halts before any write
	combo, err := s.repo.Combo.FindByID(ctx, comboID)
	if err != nil {
		return nil, fmt.Errorf("find combo: %w", err)
	}
	if combo == nil {
		return nil, fmt.Errorf("combo %s: %w", req.ComboID, utils.ErrNotFound)
	}

	bill, err := s.ownedPendingBill(ctx, userID, billID)
	if err != nil {
		return nil, err
	}

	// 3. Line price is fixed at add time
	now := time.Now()
	line := &entity.BillCombo{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		BillID:   bill.ID,
		ComboID:  combo.ID,
		Quantity: req.Quantity,
		Price:    combo.Price * int64(req.Quantity),
	}

	if err := s.repo.BillCombo.Create(ctx, line); err != nil {
		return nil, fmt.Errorf("add combo to bill: %w", err)
	}

	bill.TotalPrice += line.Price
	bill.UpdatedAt = now
	if err := s.repo.Bill.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("update bill total: %w", err)
	}

	s.log.Info("Combo added to bill",
		zap.String("bill_id", bill.ID.String()),
		zap.String("combo_id", combo.ID.String()),
		zap.Int("quantity", req.Quantity),
		zap.Int64("line_price", line.Price))

	return s.billWithLines(ctx, bill)
}

func (s *billService) ApplyCoupon(ctx context.Context, userID uuid.UUID, billID string, req *request.ApplyCouponRequest) (*response.BillResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	// 2. Coupon must exist and be active
	coupon, err := s.repo.Coupon.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("find coupon: %w", err)
	}
	if coupon == nil || !coupon.Active {
		return nil, fmt.Errorf("coupon %s: %w", req.Code, utils.ErrNotFound)
	}

	// 3. One redemption per user
	used, err := s.repo.Coupon.HasUsed(ctx, coupon.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("check coupon usage: %w", err)
	}
	if used {
		return nil, fmt.Errorf("coupon %s already redeemed: %w", req.Code, utils.ErrInvalidInput)
	}

	bill, err := s.ownedPendingBill(ctx, userID, billID)
	if err != nil {
		return nil, err
	}

	// 4. Discount and record the redemption
	now := time.Now()
	discount := bill.TotalPrice * int64(coupon.DiscountPercent) / 100
	bill.TotalPrice -= discount
	bill.UpdatedAt = now
	if err := s.repo.Bill.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("apply coupon discount: %w", err)
	}

	usage := &entity.CouponUser{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		CouponID: coupon.ID,
		UserID:   userID,
		UsedAt:   now,
	}
	if err := s.repo.Coupon.CreateUsage(ctx, usage); err != nil {
		return nil, fmt.Errorf("record coupon usage: %w", err)
	}

	s.log.Info("Coupon applied",
		zap.String("bill_id", bill.ID.String()),
		zap.String("code", coupon.Code),
		zap.Int64("discount", discount))

	return s.billWithLines(ctx, bill)
}

func (s *billService) ConfirmPayment(ctx context.Context, userID uuid.UUID, billID string, req *request.ConfirmPaymentRequest) (*response.BillResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	bill, err := s.ownedPendingBill(ctx, userID, billID)
	if err != nil {
		return nil, err
	}

	// 2. Settle by response code
	if req.ResponseCode == paymentCodeApproved {
		bill.Status = entity.BillStatusPaid
	} else {
		bill.Status = entity.BillStatusCancelled
	}
	bill.UpdatedAt = time.Now()

	if err := s.repo.Bill.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("settle bill: %w", err)
	}

	s.log.Info("Bill settled",
		zap.String("bill_id", bill.ID.String()),
		zap.String("response_code", req.ResponseCode),
		zap.String("status", string(bill.Status)))

	return s.billWithLines(ctx, bill)
}

func (s *billService) GetBill(ctx context.Context, userID uuid.UUID, billID string) (*response.BillResponse, error) {
	billUUID, err := utils.ParseUUID(billID)
	if err != nil {
		return nil, fmt.Errorf("bill id: %w", utils.ErrInvalidInput)
	}

	bill, err := s.repo.Bill.FindByID(ctx, billUUID)
	if err != nil {
		return nil, fmt.Errorf("find bill: %w", err)
	}
	if bill == nil {
		return nil, fmt.Errorf("bill %s: %w", billID, utils.ErrNotFound)
	}
	if bill.UserID != userID {
		return nil, fmt.Errorf("bill %s: %w", billID, utils.ErrForbidden)
	}

	return s.billWithLines(ctx, bill)
}

func (s *billService) ListUserBills(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BillResponse], error) {
	bills, err := s.repo.Bill.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	total, err := s.repo.Bill.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bills: %w", err)
	}

	responses := make([]response.BillResponse, 0, len(bills))
	for _, bill := range bills {
		responses = append(responses, response.BillToResponse(bill, nil, nil))
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *billService) CreateCombo(ctx context.Context, req *request.CreateComboRequest) (*response.ComboResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	now := time.Now()
	combo := &entity.Combo{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.repo.Combo.Create(ctx, combo); err != nil {
		return nil, fmt.Errorf("create combo: %w", err)
	}

	s.log.Info("Combo created",
		zap.String("combo_id", combo.ID.String()),
		zap.String("name", combo.Name))

	resp := response.ComboToResponse(combo)
	return &resp, nil
}

func (s *billService) ListCombos(ctx context.Context) ([]response.ComboResponse, error) {
	combos, err := s.repo.Combo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list combos: %w", err)
	}
	return response.CombosToResponse(combos), nil
}

// ownedPendingBill loads a bill and checks it belongs to the caller and
// is still open for mutation.
func (s *billService) ownedPendingBill(ctx context.Context, userID uuid.UUID, billID string) (*entity.Bill, error) {
	billUUID, err := utils.ParseUUID(billID)
	if err != nil {
		return nil, fmt.Errorf("bill id: %w", utils.ErrInvalidInput)
	}

	bill, err := s.repo.Bill.FindByID(ctx, billUUID)
	if err != nil {
		return nil, fmt.Errorf("find bill: %w", err)
	}
	if bill == nil {
		return nil, fmt.Errorf("bill %s: %w", billID, utils.ErrNotFound)
	}
	if bill.UserID != userID {
		return nil, fmt.Errorf("bill %s: %w", billID, utils.ErrForbidden)
	}
	if bill.Status != entity.BillStatusPending {
		return nil, fmt.Errorf("bill %s is %s: %w", billID, bill.Status, utils.ErrInvalidInput)
	}

	return bill, nil
}

func (s *billService) billWithLines(ctx context.Context, bill *entity.Bill) (*response.BillResponse, error) {
	seats, err := s.repo.BillSeat.FindByBillID(ctx, bill.ID)
	if err != nil {
		return nil, fmt.Errorf("load bill seats: %w", err)
	}

	combos, err := s.repo.BillCombo.FindByBillID(ctx, bill.ID)
	if err != nil {
		return nil, fmt.Errorf("load bill combos: %w", err)
	}

	resp := response.BillToResponse(bill, seats, combos)
	return &resp, nil
}
