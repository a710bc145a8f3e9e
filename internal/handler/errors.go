package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/locafleet/backend/internal/domain"
)

// errorBody is the wire shape for every error response: a human-readable
// message plus the HTTP status it rides on.
type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// notFound writes a 404 with the given resource-specific message.
// The caller supplies the message (e.g. "person not found") because the
// handler is the layer that knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorBody{Message: message, Status: http.StatusNotFound})
}

// badRequest writes a 400 for input rejected before reaching the service layer
// (malformed body, bad path parameter, failed field validation).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Message: message, Status: http.StatusBadRequest})
}

// internalError logs err and writes a generic 500. Store-level anomalies
// (domain.ErrRowCount) and unclassified repo failures both land here; the
// detail stays in the log, not the response.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
	})
}

// respondError maps a service error to its response: ErrNotFound becomes a
// 404 with the supplied message, everything else a 500.
func respondError(w http.ResponseWriter, err error, notFoundMessage string) {
	if errors.Is(err, domain.ErrNotFound) {
		notFound(w, notFoundMessage)
		return
	}
	internalError(w, err)
}

// validationMessage flattens a validator error into a single field-level
// message, e.g. "vehicle_id is required".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "datetime":
			return fe.Field() + " must be a date in the form 2006-01-02"
		default:
			return fe.Field() + " is invalid"
		}
	}
	return err.Error()
}
