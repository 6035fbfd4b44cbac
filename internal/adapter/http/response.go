package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/infrastructure/logger"
)

type apiError struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, apiError{Detail: detail})
}

// writeServiceError maps service errors onto status codes. notFound is the
// detail used for domain.ErrNotFound. Unexpected errors are logged and
// hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error.Printf("%s %s: %v", r.Method, logger.SanitizeForLog(r.URL.Path), err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
