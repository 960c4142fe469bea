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

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error)
	GetBySlug(ctx context.Context, movieSlug string) (*response.MovieResponse, error)
	ListPublished(ctx context.Context) ([]response.MovieResponse, error)
	ListAll(ctx context.Context) ([]response.MovieResponse, error)
	RateMovie(ctx context.Context, movieID string, req *request.RateMovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid release date: %w", utils.ErrInvalidInput)
	}

	// 2. Derive a unique slug from the title
	movieSlug, err := s.uniqueSlug(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	// 3. Persist
	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		Slug:              movieSlug,
		Description:       req.Description,
		PosterURL:         req.PosterURL,
		ReleaseDate:       releaseDate,
		DurationInMinutes: req.DurationInMinutes,
		Published:         req.Published,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("slug", movie.Slug))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	movieUUID, err := utils.ParseUUID(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie id: %w", utils.ErrInvalidInput)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, utils.ErrNotFound)
	}

	// 2. Apply the provided fields; a title change re-derives the slug
	if req.Title != nil && *req.Title != movie.Title {
		movieSlug, err := s.uniqueSlug(ctx, *req.Title)
		if err != nil {
			return nil, err
		}
		movie.Title = *req.Title
		movie.Slug = movieSlug
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date: %w", utils.ErrInvalidInput)
		}
		movie.ReleaseDate = releaseDate
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
	}
	if req.Published != nil {
		movie.Published = *req.Published
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movie.ID.String()))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetBySlug(ctx context.Context, movieSlug string) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindBySlugAndPublished(ctx, movieSlug)
	if err != nil {
		return nil, fmt.Errorf("find movie by slug: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieSlug, utils.ErrNotFound)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) ListPublished(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAllPublishedOrderByRating(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published movies: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) ListAll(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAllOrderByReleaseDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) RateMovie(ctx context.Context, movieID string, req *request.RateMovieRequest) (*response.MovieResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrInvalidInput)
	}

	movieUUID, err := utils.ParseUUID(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie id: %w", utils.ErrInvalidInput)
	}

	// 2. The aggregate update runs atomically against the movie row
	movie, err := s.repo.Movie.ApplyRating(ctx, movieUUID, req.Rating)
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie rated",
		zap.String("movie_id", movie.ID.String()),
		zap.Int("rating", req.Rating),
		zap.Float64("average", movie.Rating))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// uniqueSlug slugifies the title and appends -2, -3, ... until the slug
// is free.
func (s *movieService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	candidate := base

	for i := 2; ; i++ {
		exists, err := s.repo.Movie.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
