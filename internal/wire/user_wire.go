package wire

import (
	"account-service/internal/adaptor"
	"account-service/pkg/middleware"
	"account-service/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes, all session-protected
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	r.With(middleware.AuthSession(tokens, log)).Route("/api/users", func(r chi.Router) {
		r.Get("/all-users", userHandler.GetAllUsers)
		r.Get("/user/{id}", userHandler.GetUser)
		r.Put("/edit-account/{id}", userHandler.EditAccount)
		r.Put("/edit-password/{id}", userHandler.EditPassword)
		r.Delete("/delete-account/{id}", userHandler.DeleteAccount)
	})
}
