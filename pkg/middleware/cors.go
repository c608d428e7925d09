package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the configured client origin plus the local dev server,
// with credentials.
func CORS(clientURI string) func(http.Handler) http.Handler {
	origins := []string{"http://localhost:5173"}
	if clientURI != "" {
		origins = append([]string{clientURI}, origins...)
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
