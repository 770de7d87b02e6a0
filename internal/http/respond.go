package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"finmate/internal/core"
	"finmate/internal/currency"
	"finmate/internal/services"
	"finmate/internal/storage"
)

type errorResponse struct {
	Error     string `json:"error"`
	Completed string `json:"completed,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to status codes. Validation problems are
// the caller's fault, missing rows are 404, partial failures are
// reported as such so the client can show the true state.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var partial *services.PartialFailure
	switch {
	case errors.As(err, &partial):
		slog.ErrorContext(r.Context(), "Partial failure", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:     partial.Failed + " failed",
			Completed: partial.Completed,
		})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrInvalidAmount,
		core.ErrDescriptionTooLong,
		core.ErrInvalidDate,
		core.ErrEmptyDescription,
		core.ErrEmptyCategory,
		core.ErrInvalidKind,
		core.ErrInvalidFrequency,
		core.ErrGoalComplete,
		core.ErrEmptyName,
		core.ErrInvalidReminderDay,
		currency.ErrUnsupported,
		services.ErrNoParticipants,
		services.ErrShareMismatch,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
