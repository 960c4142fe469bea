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

type ShowtimeService interface {
	CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
	ListForMovie(ctx context.Context, movieID, date string) ([]response.ShowtimeResponse, error)
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log,
	}
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	movieID, err := utils.ParseUUID(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("movie id: %w", utils.ErrInvalidInput)
	}
	auditoriumID, err := utils.ParseUUID(req.AuditoriumID)
	if err != nil {
		return nil, fmt.Errorf("auditorium id: %w", utils.ErrInvalidInput)
	}

	// 2. Movie and auditorium must exist
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", req.MovieID, utils.ErrNotFound)
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, auditoriumID)
	if err != nil {
		return nil, fmt.Errorf("find auditorium: %w", err)
	}
	if auditorium == nil {
		return nil, fmt.Errorf("auditorium %s: %w", req.AuditoriumID, utils.ErrNotFound)
	}

	// 3. Parse the schedule and derive the pricing axes
	screeningDate, err := time.Parse("2006-01-02", req.ScreeningDate)
	if err != nil {
		return nil, fmt.Errorf("invalid screening date: %w", utils.ErrInvalidInput)
	}

	startClock, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", utils.ErrInvalidInput)
	}

	startTime := time.Date(
		screeningDate.Year(), screeningDate.Month(), screeningDate.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, time.Local,
	)
	endTime := startTime.Add(time.Duration(movie.DurationInMinutes) * time.Minute)

	dayType := entity.DayTypeFor(screeningDate)
	if req.Holiday {
		dayType = entity.DayTypeHoliday
	}

	now := time.Now()
	showtime := &entity.Showtime{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:           movie.ID,
		AuditoriumID:      auditorium.ID,
		ScreeningDate:     screeningDate,
		StartTime:         startTime,
		EndTime:           endTime,
		GraphicsType:      entity.GraphicsType(req.GraphicsType),
		ScreeningTimeType: entity.ScreeningTimeFor(startTime),
		DayType:           dayType,
	}

	// 4. Reject overlaps in the same auditorium
	sameDay, err := s.repo.Showtime.FindByAuditoriumAndDate(ctx, auditorium.ID, screeningDate)
	if err != nil {
		return nil, fmt.Errorf("check auditorium schedule: %w", err)
	}
	for _, other := range sameDay {
		if startTime.Before(other.EndTime) && other.StartTime.Before(endTime) {
			return nil, fmt.Errorf("auditorium already booked %s-%s: %w",
				other.StartTime.Format("15:04"), other.EndTime.Format("15:04"),
				utils.ErrInvalidInput)
		}
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", movie.ID.String()),
		zap.String("auditorium_id", auditorium.ID.String()),
		zap.Time("start", startTime))

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	showtimeUUID, err := utils.ParseUUID(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("showtime id: %w", utils.ErrInvalidInput)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, utils.ErrNotFound)
	}

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) ListForMovie(ctx context.Context, movieID, date string) ([]response.ShowtimeResponse, error) {
	movieUUID, err := utils.ParseUUID(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie id: %w", utils.ErrInvalidInput)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", utils.ErrInvalidInput)
	}

	showtimes, err := s.repo.Showtime.FindByMovieAndDate(ctx, movieUUID, day)
	if err != nil {
		return nil, fmt.Errorf("list showtimes: %w", err)
	}
	return response.ShowtimesToResponse(showtimes), nil
}
