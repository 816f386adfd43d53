package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight answer.
const corsMaxAge = 600

// NewCORSHandler returns a middleware that lets the web client at
// allowedOrigins call the API. Each origin is scheme + host with no trailing
// slash.
//
// Content-Disposition is exposed so the client can read the file name of the
// CSV export and the iCalendar feed; X-Request-Id so it can quote a request in
// a bug report.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-Id"},
		MaxAge:         corsMaxAge,
	})
	return c.Handler
}
