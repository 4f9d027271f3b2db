package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/pkg/ctxutil"
)

type errorResponse struct {
	Error     string              `json:"error"`
	RequestID string              `json:"request_id,omitempty"`
	Fields    []fieldErrorPayload `json:"fields,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, errorResponse{
		Error:     message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

// handleError maps domain sentinels to HTTP statuses. Unknown errors are
// logged and hidden behind a 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{
			Error:     "validation failed",
			RequestID: ctxutil.RequestIDFromCtx(r.Context()),
		}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorPayload{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
