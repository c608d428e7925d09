package adaptor

import (
	"fmt"
	"net/http"

	"account-service/internal/usecase"
	"account-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// ResetPassword handles POST /api/admin/reset-password/{id}
func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	fullName, err := h.service.ResetPassword(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "admin reset password")
		return
	}

	utils.ResponseSuccess(w,
		fmt.Sprintf("An email was just sent to %s to reset their password!", fullName), nil)
}

// DeleteUser handles DELETE /api/admin/delete-user/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	fullName, err := h.service.DeleteUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "admin delete user")
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("User %s has been deleted", fullName), nil)
}
