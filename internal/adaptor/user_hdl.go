package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"account-service/internal/dto/request"
	"account-service/internal/usecase"
	"account-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetAllUsers handles GET /api/users/all-users
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	// Raw query values; the service normalizes page bounds.
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    h.parseInt(query.Get("page")),
		PerPage: h.parseInt(query.Get("per_page")),
	}

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetUser handles GET /api/users/user/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// EditAccount handles PUT /api/users/edit-account/{id}
func (h *UserHandler) EditAccount(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.EditAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.EditAccount(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "edit account")
		return
	}

	utils.ResponseCreated(w, "Account updated successfully", response)
}

// EditPassword handles PUT /api/users/edit-password/{id}
func (h *UserHandler) EditPassword(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.EditPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.ChangePassword(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "edit password")
		return
	}

	utils.ResponseCreated(w, "Password updated successfully", response)
}

// DeleteAccount handles DELETE /api/users/delete-account/{id}
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete account")
		return
	}

	utils.ResponseSuccess(w, "Account has been deleted", nil)
}

// parseInt helper for query parameters
func (h *UserHandler) parseInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}
