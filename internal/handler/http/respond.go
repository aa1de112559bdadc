package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/iamdarshshah/devcollective/pkg/errors"
	"github.com/iamdarshshah/devcollective/pkg/validator"
)

// errorsResponse is the body for every client error: a flat list of
// human-readable messages covering all violations at once.
type errorsResponse struct {
	Errors []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrors(w http.ResponseWriter, status int, msgs []string) {
	writeJSON(w, status, errorsResponse{Errors: msgs})
}

// writeUnauthorized sends 401 with a deliberately empty object. Every
// unauthorized branch uses the same body and status so the response never
// reveals whether an account exists or which check failed.
func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, struct{}{})
}

// writeAppError maps service errors onto the wire format.
func writeAppError(w http.ResponseWriter, r *http.Request, err error, log *slog.Logger) {
	var ve *validator.ValidationError
	if errors.As(err, &ve) {
		writeErrors(w, http.StatusBadRequest, ve.List())
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			writeUnauthorized(w)
		case errors.Is(err, apperrors.ErrAlreadyExists), errors.Is(err, apperrors.ErrConflict):
			writeErrors(w, http.StatusConflict, []string{appErr.Message})
		case errors.Is(err, apperrors.ErrInvalidInput):
			writeErrors(w, http.StatusBadRequest, []string{appErr.Message})
		case errors.Is(err, apperrors.ErrNotFound):
			writeErrors(w, http.StatusNotFound, []string{appErr.Message})
		default:
			log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
			writeErrors(w, http.StatusInternalServerError, []string{"an internal error occurred"})
		}
		return
	}

	log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
	writeErrors(w, http.StatusInternalServerError, []string{"an internal error occurred"})
}
