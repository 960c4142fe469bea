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

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

type CinemaService interface {
	CreateCinema(ctx context.Context, req *request.CreateCinemaRequest) (*response.CinemaResponse, error)
	ListCinemas(ctx context.Context) ([]response.CinemaResponse, error)
	CreateAuditorium(ctx context.Context, cinemaID string, req *request.CreateAuditoriumRequest) (*response.AuditoriumResponse, error)
	ListAuditoriums(ctx context.Context, cinemaID string) ([]response.AuditoriumResponse, error)
	CreateSeats(ctx context.Context, auditoriumID string, req *request.CreateSeatsRequest) ([]response.SeatResponse, error)
	ListSeats(ctx context.Context, auditoriumID string) ([]response.SeatResponse, error)
}

type cinemaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCinemaService(repo *repository.Repository, log *zap.Logger) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log,
	}
}

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CreateCinemaRequest) (*response.CinemaResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cinema validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	// 2. Derive a unique slug from the name
	base := slug.Make(req.Name)
	candidate := base
	for i := 2; ; i++ {
		exists, err := s.repo.Cinema.SlugExists(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	// 3. Persist
	now := time.Now()
	cinema := &entity.Cinema{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Slug:    candidate,
		Address: req.Address,
	}

	if err := s.repo.Cinema.Create(ctx, cinema); err != nil {
		return nil, fmt.Errorf("create cinema: %w", err)
	}

	s.log.Info("Cinema created",
		zap.String("cinema_id", cinema.ID.String()),
		zap.String("slug", cinema.Slug))

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) ListCinemas(ctx context.Context) ([]response.CinemaResponse, error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cinemas: %w", err)
	}
	return response.CinemasToResponse(cinemas), nil
}

func (s *cinemaService) CreateAuditorium(ctx context.Context, cinemaID string, req *request.CreateAuditoriumRequest) (*response.AuditoriumResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	cinemaUUID, err := utils.ParseUUID(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("cinema id: %w", utils.ErrInvalidInput)
	}

	// 2. The cinema must exist
	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaUUID)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return nil, fmt.Errorf("cinema %s: %w", cinemaID, utils.ErrNotFound)
	}

	// 3. Persist
	now := time.Now()
	auditorium := &entity.Auditorium{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CinemaID: cinema.ID,
		Name:     req.Name,
		Type:     entity.AuditoriumType(req.Type),
	}

	if err := s.repo.Auditorium.Create(ctx, auditorium); err != nil {
		return nil, fmt.Errorf("create auditorium: %w", err)
	}

	s.log.Info("Auditorium created",
		zap.String("auditorium_id", auditorium.ID.String()),
		zap.String("cinema_id", cinema.ID.String()))

	resp := response.AuditoriumToResponse(auditorium)
	return &resp, nil
}

func (s *cinemaService) ListAuditoriums(ctx context.Context, cinemaID string) ([]response.AuditoriumResponse, error) {
	cinemaUUID, err := utils.ParseUUID(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("cinema id: %w", utils.ErrInvalidInput)
	}

	auditoriums, err := s.repo.Auditorium.FindByCinemaID(ctx, cinemaUUID)
	if err != nil {
		return nil, fmt.Errorf("list auditoriums: %w", err)
	}
	return response.AuditoriumsToResponse(auditoriums), nil
}

func (s *cinemaService) CreateSeats(ctx context.Context, auditoriumID string, req *request.CreateSeatsRequest) ([]response.SeatResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	auditoriumUUID, err := utils.ParseUUID(auditoriumID)
	if err != nil {
		return nil, fmt.Errorf("auditorium id: %w", utils.ErrInvalidInput)
	}

	// 2. The auditorium must exist
	auditorium, err := s.repo.Auditorium.FindByID(ctx, auditoriumUUID)
	if err != nil {
		return nil, fmt.Errorf("find auditorium: %w", err)
	}
	if auditorium == nil {
		return nil, fmt.Errorf("auditorium %s: %w", auditoriumID, utils.ErrNotFound)
	}

	// 3. Batch insert the layout
	now := time.Now()
	seats := make([]*entity.Seat, 0, len(req.Seats))
	for _, spec := range req.Seats {
		seats = append(seats, &entity.Seat{
			Base: entity.Base{
				ID:        utils.GenerateUUID(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			AuditoriumID: auditorium.ID,
			SeatRow:      spec.Row,
			SeatColumn:   spec.Column,
			Type:         entity.SeatType(spec.Type),
		})
	}

	if err := s.repo.Seat.CreateBatch(ctx, seats); err != nil {
		return nil, fmt.Errorf("create seats: %w", err)
	}

	// 4. Roll the layout size up onto the auditorium
	if err := s.repo.Auditorium.UpdateTotalSeats(ctx, auditorium.ID, auditorium.TotalSeats+len(seats)); err != nil {
		s.log.Warn("Failed to update auditorium seat count",
			zap.Error(err), zap.String("auditorium_id", auditorium.ID.String()))
	}

	s.log.Info("Seats created",
		zap.String("auditorium_id", auditorium.ID.String()),
		zap.Int("count", len(seats)))

	return response.SeatsToResponse(seats), nil
}

func (s *cinemaService) ListSeats(ctx context.Context, auditoriumID string) ([]response.SeatResponse, error) {
	auditoriumUUID, err := utils.ParseUUID(auditoriumID)
	if err != nil {
		return nil, fmt.Errorf("auditorium id: %w", utils.ErrInvalidInput)
	}

	seats, err := s.repo.Seat.FindByAuditoriumID(ctx, auditoriumUUID)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	return response.SeatsToResponse(seats), nil
}
