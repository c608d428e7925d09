package middleware

import (
	"net/http"
	"strings"

	"account-service/internal/data/repository"
	"account-service/pkg/token"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the Bearer session token and puts the embedded
// user id and role into the request context. Stateless, no store access.
func AuthSession(tokens *token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Authorization header missing")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				utils.ResponseUnauthorized(w, "Invalid authorization header. Use: Bearer <token>")
				return
			}

			snapshot, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Invalid session token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			userID, err := utils.ParseUUID(snapshot.ID)
			if err != nil {
				logger.Warn("Session token carries malformed user id", zap.String("id", snapshot.ID))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, snapshot.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin gates admin routes. The role claim is re-checked against the store
// so a stale token cannot keep admin rights after a role change or delete.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get user ID from context (set by AuthSession)
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Non-admin claims fail fast without a store round trip
			if role, ok := utils.GetRoleFromContext(r.Context()); !ok || role != "admin" {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			// 3. Re-check the role against the store; a stale admin claim
			// must not keep admin rights after a role change or delete
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.Role != "admin" {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
