package wire

import (
	"account-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// All auth routes are public; loggedin does its own header check
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Get("/loggedin", authHandler.LoggedIn)
		r.Put("/verify", authHandler.Verify)
		r.Post("/forgot-password", authHandler.ForgotPassword)
		r.Put("/reset-password", authHandler.ResetPassword)
	})
}
