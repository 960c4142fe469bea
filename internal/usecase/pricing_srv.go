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

	"go.uber.org/zap"
)

type PricingService interface {
	GetTicketPrice(ctx context.Context, showtimeID, seatID string) (*response.TicketPriceResponse, error)
	ResolveSeatPrice(ctx context.Context, showtime *entity.Showtime, seat *entity.Seat) (int64, error)
	UpsertBasePrice(ctx context.Context, req *request.UpsertBasePriceRequest) (*response.BasePriceResponse, error)
	ListByCinema(ctx context.Context, cinemaID string) ([]response.BasePriceResponse, error)
}

type pricingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPricingService(repo *repository.Repository, log *zap.Logger) PricingService {
	return &pricingService{
		repo: repo,
		log:  log,
	}
}

func (s *pricingService) GetTicketPrice(ctx context.Context, showtimeID, seatID string) (*response.TicketPriceResponse, error) {
	showtimeUUID, err := utils.ParseUUID(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("showtime id: %w", utils.ErrInvalidInput)
	}
	seatUUID, err := utils.ParseUUID(seatID)
	if err != nil {
		return nil, fmt.Errorf("seat id: %w", utils.ErrInvalidInput)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, utils.ErrNotFound)
	}

	seat, err := s.repo.Seat.FindByID(ctx, seatUUID)
	if err != nil {
		return nil, fmt.Errorf("find seat: %w", err)
	}
	if seat == nil {
		return nil, fmt.Errorf("seat %s: %w", seatID, utils.ErrNotFound)
	}

	price, err := s.ResolveSeatPrice(ctx, showtime, seat)
	if err != nil {
		return nil, err
	}

	return &response.TicketPriceResponse{
		ShowtimeID: showtime.ID.String(),
		SeatID:     seat.ID.String(),
		Price:      price,
	}, nil
}

// ResolveSeatPrice maps a showtime and a seat onto the six pricing axes
// and looks the base price up. A tuple the administrator never seeded is
// a hard not-found, never a default price.
func (s *pricingService) ResolveSeatPrice(ctx context.Context, showtime *entity.Showtime, seat *entity.Seat) (int64, error) {
	if seat.AuditoriumID != showtime.AuditoriumID {
		return 0, fmt.Errorf("seat does not belong to showtime auditorium: %w", utils.ErrInvalidInput)
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, showtime.AuditoriumID)
	if err != nil {
		return 0, fmt.Errorf("find auditorium: %w", err)
	}
	if auditorium == nil {
		return 0, fmt.Errorf("auditorium %s: %w", showtime.AuditoriumID.String(), utils.ErrNotFound)
	}

	key := entity.PriceKey{
		CinemaID:          auditorium.CinemaID,
		AuditoriumType:    auditorium.Type,
		DayType:           showtime.DayType,
		ScreeningTimeType: showtime.ScreeningTimeType,
		GraphicsType:      showtime.GraphicsType,
		SeatType:          seat.Type,
	}

	price, err := s.repo.Price.FindByKey(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("find base ticket price: %w", err)
	}
	if price == nil {
		s.log.Warn("No base price configured",
			zap.String("cinema_id", key.CinemaID.String()),
			zap.String("auditorium_type", string(key.AuditoriumType)),
			zap.String("day_type", string(key.DayType)),
			zap.String("screening_time_type", string(key.ScreeningTimeType)),
			zap.String("graphics_type", string(key.GraphicsType)),
			zap.String("seat_type", string(key.SeatType)))
		return 0, fmt.Errorf("base ticket price: %w", utils.ErrNotFound)
	}

	return price.Price, nil
}

func (s *pricingService) UpsertBasePrice(ctx context.Context, req *request.UpsertBasePriceRequest) (*response.BasePriceResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	cinemaID, err := utils.ParseUUID(req.CinemaID)
	if err != nil {
		return nil, fmt.Errorf("cinema id: %w", utils.ErrInvalidInput)
	}

	// 2. The cinema must exist
	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaID)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return nil, fmt.Errorf("cinema %s: %w", req.CinemaID, utils.ErrNotFound)
	}

	// 3. Upsert on the 6-tuple
	now := time.Now()
	price := &entity.BaseTicketPrice{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CinemaID:          cinemaID,
		AuditoriumType:    entity.AuditoriumType(req.AuditoriumType),
		DayType:           entity.DayType(req.DayType),
		ScreeningTimeType: entity.ScreeningTimeType(req.ScreeningTimeType),
		GraphicsType:      entity.GraphicsType(req.GraphicsType),
		SeatType:          entity.SeatType(req.SeatType),
		Price:             req.Price,
	}

	if err := s.repo.Price.Upsert(ctx, price); err != nil {
		return nil, fmt.Errorf("upsert base price: %w", err)
	}

	s.log.Info("Base ticket price upserted",
		zap.String("cinema_id", req.CinemaID),
		zap.Int64("price", req.Price))

	resp := response.BasePriceToResponse(price)
	return &resp, nil
}

func (s *pricingService) ListByCinema(ctx context.Context, cinemaID string) ([]response.BasePriceResponse, error) {
	cinemaUUID, err := utils.ParseUUID(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("cinema id: %w", utils.ErrInvalidInput)
	}

	prices, err := s.repo.Price.FindByCinemaID(ctx, cinemaUUID)
	if err != nil {
		return nil, fmt.Errorf("list base prices: %w", err)
	}

	return response.BasePricesToResponse(prices), nil
}
