package usecase_test

import (
	"context"
	"testing"

	"cineplex/internal/data/entity"
	"cineplex/internal/dto/request"
	"cineplex/internal/usecase"
	"cineplex/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func showtimeReq(w *world, date, start string) *request.CreateShowtimeRequest {
	return &request.CreateShowtimeRequest{
		MovieID:       w.movie.ID.String(),
		AuditoriumID:  w.auditorium.ID.String(),
		ScreeningDate: date,
		StartTime:     start,
		GraphicsType:  "TWO_D",
	}
}

func TestCreateShowtimeDerivesAxes(t *testing.T) {
	ctx := context.Background()
	w := seedWorld(t)
	svc := usecase.NewShowtimeService(w.repo, zap.NewNop())

	// Thursday morning, 120 minute feature
	created, err := svc.CreateShowtime(ctx, showtimeReq(w, "2026-09-03", "09:30"))
	require.NoError(t, err)
	require.Equal(t, "09:30", created.StartTime)
	require.Equal(t, "11:30", created.EndTime)
	require.Equal(t, entity.ScreeningTimeEarly, created.ScreeningTimeType)
	require.Equal(t, entity.DayTypeWeekday, created.DayType)

	evening, err := svc.CreateShowtime(ctx, showtimeReq(w, "2026-09-05", "20:00"))
	require.NoError(t, err)
	require.Equal(t, entity.ScreeningTimeLate, evening.ScreeningTimeType)
	require.Equal(t, entity.DayTypeWeekend, evening.DayType)
}

func TestCreateShowtimeHolidayOverridesWeekday(t *testing.T) {
	ctx := context.Background()
	w := seedWorld(t)
	svc := usecase.NewShowtimeService(w.repo, zap.NewNop())

	req := showtimeReq(w, "2026-09-03", "10:00")
	req.Holiday = true
	created, err := svc.CreateShowtime(ctx, req)
	require.NoError(t, err)
	require.Equal(t, entity.DayTypeHoliday, created.DayType)
}

func TestCreateShowtimeRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	w := seedWorld(t)
	svc := usecase.NewShowtimeService(w.repo, zap.NewNop())

	// Seeded showtime runs 14:00-16:00 in the same auditorium
	_, err := svc.CreateShowtime(ctx, showtimeReq(w, "2026-09-02", "15:00"))
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.CreateShowtime(ctx, showtimeReq(w, "2026-09-02", "13:00"))
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	// Back to back is allowed
	created, err := svc.CreateShowtime(ctx, showtimeReq(w, "2026-09-02", "16:00"))
	require.NoError(t, err)
	require.Equal(t, "16:00", created.StartTime)
}

func TestCreateShowtimeUnknownMovie(t *testing.T) {
	ctx := context.Background()
	w := seedWorld(t)
	svc := usecase.NewShowtimeService(w.repo, zap.NewNop())

	req := showtimeReq(w, "2026-09-03", "10:00")
	req.MovieID = utils.GenerateUUID().String()
	_, err := svc.CreateShowtime(ctx, req)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListForMovieFiltersByDate(t *testing.T) {
	ctx := context.Background()
	w := seedWorld(t)
	svc := usecase.NewShowtimeService(w.repo, zap.NewNop())

	_, err := svc.CreateShowtime(ctx, showtimeReq(w, "2026-09-03", "10:00"))
	require.NoError(t, err)

	sameDay, err := svc.ListForMovie(ctx, w.movie.ID.String(), "2026-09-02")
	require.NoError(t, err)
	require.Len(t, sameDay, 1)

	nextDay, err := svc.ListForMovie(ctx, w.movie.ID.String(), "2026-09-03")
	require.NoError(t, err)
	require.Len(t, nextDay, 1)
	require.Equal(t, "10:00", nextDay[0].StartTime)
}
