package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight answer.
const corsMaxAge = 300

// newCORS allows cross-origin calls from any origin. Preflight requests pass
// through to endPreflight once the CORS headers are set.
func newCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"*"},
		ExposedHeaders:     []string{traceIDHeader},
		MaxAge:             corsMaxAge,
		OptionsPassthrough: true,
	})
}

// endPreflight answers every OPTIONS request with 204 before routing.
func endPreflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
