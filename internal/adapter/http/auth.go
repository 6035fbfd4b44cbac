package http

import (
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/bnema/standup/internal/adapter/http/ratelimit"
	"github.com/bnema/standup/internal/infrastructure/logger"
	"github.com/bnema/standup/internal/service"
)

const APIKeyHeader = "X-API-Key"

type APIKeyValidator interface {
	Enabled() bool
	ValidateAPIKey(key string) error
}

// APIKeyAuth rejects requests without a valid X-API-Key header. Clients
// that keep failing are delayed with backoff and then blocked by limiter.
// Paths in public skip the check entirely.
func APIKeyAuth(auth APIKeyValidator, limiter *ratelimit.FailureLimiter, backoff *ratelimit.Backoff, public func(path string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !auth.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if public(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			client := clientIP(r)
			if ok, retryIn := limiter.Allowed(client); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryIn.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "Too many failed attempts")
				return
			}

			err := auth.ValidateAPIKey(apiKey(r))
			if err == nil {
				limiter.Success(client)
				next.ServeHTTP(w, r)
				return
			}
			if !errors.Is(err, service.ErrInvalidAPIKey) {
				logger.Error.Printf("api key check: %v", err)
			}

			attempt := limiter.Failure(client)
			logger.Warn.Printf("rejected API key from %s (attempt %d)", logger.SanitizeForLog(client), attempt)
			if err := backoff.Wait(r.Context(), attempt); err != nil {
				return
			}
			writeError(w, http.StatusUnauthorized, "Invalid or missing API key")
		})
	}
}

// apiKey reads the header, falling back to the api_key query parameter
// because browsers cannot set headers on an EventSource.
func apiKey(r *http.Request) string {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		return key
	}
	return r.URL.Query().Get("api_key")
}

// clientIP expects chi's RealIP middleware to have rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
