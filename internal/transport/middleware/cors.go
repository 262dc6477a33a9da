package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/AFTLlimited25/Platrr-Business/internal/config"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control headers for allowed origins. A "*" origin allows any.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{GuestSessionHeader, RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
