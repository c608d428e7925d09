package wire

import (
	"net/http"
	"time"

	"account-service/internal/adaptor"
	"account-service/internal/data/repository"
	"account-service/internal/usecase"
	"account-service/pkg/mailer"
	"account-service/pkg/middleware"
	"account-service/pkg/token"
	"account-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.NewManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)
	mail := mailer.NewSMTPMailer(config.Email)

	// Initialize services and handlers
	service := usecase.NewService(repo, config, tokens, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, tokens, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Manager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.Client.URI))

	// Apply routes
	wireAuth(r, handler.Auth, logger)
	wireUser(r, handler.User, tokens, logger)
	wireAdmin(r, handler.Admin, repo, tokens, logger)

	// Liveness endpoints
	r.Get("/api", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("All good in here."))
	})
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Server is running", map[string]string{"status": "healthy"})
	})

	return r
}
