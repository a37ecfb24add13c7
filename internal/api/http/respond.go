package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
)

const (
	msgSaveFailed    = "Unable to save changes."
	msgInternalError = "Internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, errorResponse{Error: message})
}

// respondWithServiceError maps domain errors onto status codes. Unexpected
// failures are logged and reported with a generic message, which differs
// for reads and writes.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, write bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Info("Resource not found", "path", r.URL.Path, "error", err)
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyClosed):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		if write {
			respondWithError(w, http.StatusInternalServerError, msgSaveFailed)
			return
		}
		respondWithError(w, http.StatusInternalServerError, msgInternalError)
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
