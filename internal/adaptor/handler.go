package adaptor

import (
	"errors"
	"net/http"

	"cineplex/internal/usecase"
	"cineplex/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Movie    *MovieHandler
	Cinema   *CinemaHandler
	Showtime *ShowtimeHandler
	Pricing  *PricingHandler
	Bill     *BillHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Cinema:   NewCinemaHandler(service.Cinema, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Pricing:  NewPricingHandler(service.Pricing, log),
		Bill:     NewBillHandler(service.Bill, log),
	}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	msg := err.Error()

	switch {
	case errors.Is(err, utils.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, msg)

	case errors.Is(err, utils.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, msg)

	case errors.Is(err, utils.ErrAccountDisabled):
		log.Warn(operation+" failed - account disabled", zap.Error(err))
		utils.ResponseForbidden(w, msg)

	case errors.Is(err, utils.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, msg)

	case errors.Is(err, utils.ErrInvalidInput),
		errors.Is(err, utils.ErrInvalidToken),
		errors.Is(err, utils.ErrAlreadyConfirmed),
		errors.Is(err, utils.ErrExpired):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, msg, nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}
