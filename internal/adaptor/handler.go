package adaptor

import (
	"errors"
	"net/http"

	"account-service/internal/usecase"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	User  *UserHandler
	Admin *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		User:  NewUserHandler(service.User, log),
		Admin: NewAdminHandler(service.Admin, log),
	}
}

// handleServiceError maps domain failures to status classes. Anything not
// recognized is an internal error and returns no detail to the caller.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrEmailTaken):
		log.Warn(operation+" failed - email taken", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrWrongPassword),
		errors.Is(err, usecase.ErrOldPasswordMismatch),
		errors.Is(err, usecase.ErrResetTokenMismatch),
		errors.Is(err, usecase.ErrMissingAuthorization),
		errors.Is(err, usecase.ErrMalformedAuthorization),
		errors.Is(err, usecase.ErrInvalidToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
