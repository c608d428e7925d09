package wire

import (
	"account-service/internal/adaptor"
	"account-service/internal/data/repository"
	"account-service/pkg/middleware"
	"account-service/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin configures admin routes, requiring both a valid session
// AND the admin role
func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	tokens *token.Manager,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthSession(tokens, log), // Check valid session
		middleware.Admin(repo.User, log),    // Check admin role
	).Route("/api/admin", func(r chi.Router) {
		r.Post("/reset-password/{id}", adminHandler.ResetPassword)
		r.Delete("/delete-user/{id}", adminHandler.DeleteUser)
	})
}
