package adaptor

import (
	"errors"
	"net/http"

	"carparts-store/internal/usecase"
	"carparts-store/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Product *ProductHandler
	Order   *OrderHandler
	Review  *ReviewHandler
	Profile *ProfileHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Product: NewProductHandler(service.Product, log),
		Order:   NewOrderHandler(service.Order, log),
		Review:  NewReviewHandler(service.Review, log),
		Profile: NewProfileHandler(service.Profile, log),
	}
}

// handleServiceError maps service error kinds to HTTP statuses. All handlers
// share this one translation so a given error always produces the same
// status code.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadySettled):
		log.Warn(operation+" failed - already settled", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrGatewayTimeout):
		log.Error(operation+" failed - gateway timeout", zap.Error(err))
		utils.ResponseGatewayTimeout(w, err.Error())

	case errors.Is(err, usecase.ErrGateway):
		log.Error(operation+" failed - gateway error", zap.Error(err))
		utils.ResponseBadGateway(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// paginationFromQuery reads page/per_page query parameters with defaults.
func paginationFromQuery(r *http.Request) (page, perPage int) {
	query := r.URL.Query()
	return utils.ParseInt(query.Get("page"), 1), utils.ParseInt(query.Get("per_page"), 10)
}
