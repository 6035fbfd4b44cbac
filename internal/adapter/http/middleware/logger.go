package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bnema/standup/internal/infrastructure/logger"
)

// RequestLogger logs one line per request. It must run after
// chimw.RequestID so the request id is in the context.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logger.Info.Printf("[http] req_id=%s method=%s path=%s status=%d bytes=%d duration_ms=%d",
			chimw.GetReqID(r.Context()),
			r.Method,
			logger.SanitizeForLog(r.URL.Path),
			status,
			ww.BytesWritten(),
			time.Since(start).Milliseconds(),
		)
	})
}
