// Package middleware holds the HTTP middleware shared by all routes.
package middleware

import (
	"net/http"

	"github.com/jeesuva/companion/backend/internal/security"
	"github.com/jeesuva/companion/backend/pkg/utils"
)

// CORS permits browser clients from any origin and answers preflights.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders applies the baseline hardening headers to every response.
func SecurityHeaders(next http.Handler) http.Handler {
	headers := security.Headers()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for key, value := range headers {
			w.Header().Set(key, value)
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit rejects callers that exceed the limiter's window cap. Callers
// are keyed by remote address, which chi's RealIP middleware has already
// resolved by the time this runs.
func RateLimit(limiter *security.RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.RemoteAddr) {
				utils.RespondError(w, http.StatusTooManyRequests, "too many requests, slow down a little")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
