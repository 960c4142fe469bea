package usecase_test

import (
	"context"
	"testing"
	"time"

	"cineplex/internal/data/entity"
	"cineplex/internal/dto/request"
	"cineplex/internal/usecase"
	"cineplex/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBillEnv(t *testing.T) (*world, uuid.UUID, usecase.BillService) {
	t.Helper()
	w := seedWorld(t)
	w.seedPrice(t, entity.SeatTypeNormal, 50_000)
	w.seedPrice(t, entity.SeatTypeVIP, 80_000)

	pricing := usecase.NewPricingService(w.repo, zap.NewNop())
	svc := usecase.NewBillService(w.repo, pricing, zap.NewNop())
	return w, utils.GenerateUUID(), svc
}

func seedCombo(t *testing.T, w *world, name string, price int64) *entity.Combo {
	t.Helper()
	now := time.Now()
	combo := &entity.Combo{
		Base:  entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		Name:  name,
		Price: price,
	}
	require.NoError(t, w.repo.Combo.Create(context.Background(), combo))
	return combo
}

func TestCreateBillSumsSeatPrices(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)

	bill, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String(), w.seatVIP.ID.String()},
	})
	require.NoError(t, err)
	require.Equal(t, int64(130_000), bill.TotalPrice)
	require.Equal(t, entity.BillStatusPending, bill.Status)
	require.Len(t, bill.Seats, 2)
	require.NotEmpty(t, bill.BillCode)
}

func TestCreateBillWithComboLines(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)
	combo := seedCombo(t, w, "Nachos", 40_000)

	bill, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String()},
		Combos:     []request.BillComboSpec{{ComboID: combo.ID.String(), Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(130_000), bill.TotalPrice)
	require.Len(t, bill.Combos, 1)
	require.Equal(t, int64(80_000), bill.Combos[0].Price)
}

func TestCreateBillUnpricedSeatFails(t *testing.T) {
	ctx := context.Background()
	w := seedWorld(t)
	// Only NORMAL is priced
	w.seedPrice(t, entity.SeatTypeNormal, 50_000)
	pricing := usecase.NewPricingService(w.repo, zap.NewNop())
	svc := usecase.NewBillService(w.repo, pricing, zap.NewNop())

	_, err := svc.CreateBill(ctx, utils.GenerateUUID(), &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatVIP.ID.String()},
	})
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCreateBillRejectsTakenSeat(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)

	_, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String()},
	})
	require.NoError(t, err)

	_, err = svc.CreateBill(ctx, utils.GenerateUUID(), &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String()},
	})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAddComboFixesLinePrice(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)
	combo := seedCombo(t, w, "Popcorn L", 35_000)

	bill, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String()},
	})
	require.NoError(t, err)

	withCombo, err := svc.AddCombo(ctx, userID, bill.ID, &request.AddComboRequest{
		ComboID:  combo.ID.String(),
		Quantity: 2,
	})
	require.NoError(t, err)
	require.Len(t, withCombo.Combos, 1)
	require.Equal(t, int64(70_000), withCombo.Combos[0].Price)
	require.Equal(t, int64(120_000), withCombo.TotalPrice)

	// Raising the catalog price later does not touch the bill line
	combo.Price = 99_000
	combo.UpdatedAt = time.Now()
	require.NoError(t, w.repo.Combo.Update(ctx, combo))

	reloaded, err := svc.GetBill(ctx, userID, bill.ID)
	require.NoError(t, err)
	require.Equal(t, int64(70_000), reloaded.Combos[0].Price)
	require.Equal(t, int64(120_000), reloaded.TotalPrice)
}

func TestAddComboMissingComboHaltsBeforeWrite(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)

	bill, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String()},
	})
	require.NoError(t, err)

	_, err = svc.AddCombo(ctx, userID, bill.ID, &request.AddComboRequest{
		ComboID:  utils.GenerateUUID().String(),
		Quantity: 1,
	})
	require.ErrorIs(t, err, utils.ErrNotFound)

	reloaded, err := svc.GetBill(ctx, userID, bill.ID)
	require.NoError(t, err)
	require.Empty(t, reloaded.Combos)
	require.Equal(t, bill.TotalPrice, reloaded.TotalPrice)
}

func TestAddComboMissingBill(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)
	combo := seedCombo(t, w, "Popcorn L", 35_000)

	_, err := svc.AddCombo(ctx, userID, utils.GenerateUUID().String(), &request.AddComboRequest{
		ComboID:  combo.ID.String(),
		Quantity: 1,
	})
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestConfirmPaymentResponseCodes(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)

	paid, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String()},
	})
	require.NoError(t, err)

	settled, err := svc.ConfirmPayment(ctx, userID, paid.ID, &request.ConfirmPaymentRequest{ResponseCode: "00"})
	require.NoError(t, err)
	require.Equal(t, entity.BillStatusPaid, settled.Status)

	declined, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatVIP.ID.String()},
	})
	require.NoError(t, err)

	cancelled, err := svc.ConfirmPayment(ctx, userID, declined.ID, &request.ConfirmPaymentRequest{ResponseCode: "24"})
	require.NoError(t, err)
	require.Equal(t, entity.BillStatusCancelled, cancelled.Status)

	// Settled bills are closed for further mutation
	_, err = svc.ConfirmPayment(ctx, userID, paid.ID, &request.ConfirmPaymentRequest{ResponseCode: "00"})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestApplyCouponSingleRedemption(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)

	now := time.Now()
	coupon := &entity.Coupon{
		Base:            entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		Code:            "WELCOME10",
		DiscountPercent: 10,
		Active:          true,
	}
	require.NoError(t, w.repo.Coupon.Create(ctx, coupon))

	bill, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String()},
	})
	require.NoError(t, err)

	discounted, err := svc.ApplyCoupon(ctx, userID, bill.ID, &request.ApplyCouponRequest{Code: "WELCOME10"})
	require.NoError(t, err)
	require.Equal(t, int64(45_000), discounted.TotalPrice)

	second, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatVIP.ID.String()},
	})
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(ctx, userID, second.ID, &request.ApplyCouponRequest{Code: "WELCOME10"})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestBillOwnership(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)

	bill, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String()},
	})
	require.NoError(t, err)

	_, err = svc.GetBill(ctx, utils.GenerateUUID(), bill.ID)
	require.ErrorIs(t, err, utils.ErrForbidden)
}

func TestListUserBillsPaginates(t *testing.T) {
	ctx := context.Background()
	w, userID, svc := newBillEnv(t)

	_, err := svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatNormal.ID.String()},
	})
	require.NoError(t, err)
	_, err = svc.CreateBill(ctx, userID, &request.CreateBillRequest{
		ShowtimeID: w.showtime.ID.String(),
		SeatIDs:    []string{w.seatVIP.ID.String()},
	})
	require.NoError(t, err)

	page, err := svc.ListUserBills(ctx, userID, &request.PaginatedRequest{Page: 1, PerPage: 1})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.Equal(t, int64(2), page.Pagination.Total)
	require.Equal(t, 2, page.Pagination.TotalPages)
}
