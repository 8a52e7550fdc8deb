package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps a service error onto a status code. Unknown errors are
// logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeMessage(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrDuplicateVote),
		errors.Is(err, domain.ErrUsernameTaken):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrPollNotFound),
		errors.Is(err, domain.ErrOptionNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	default:
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("", "invalid request body")
	}
	return nil
}
