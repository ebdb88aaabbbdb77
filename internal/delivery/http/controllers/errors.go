package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/domain"
)

// writeServiceError maps domain sentinel errors onto the API error
// envelope. Unrecognized errors are logged and reported as 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrVersionMismatch):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeVersionMismatch, "item changed since it was loaded, reload and retry")
	case errors.Is(err, domain.ErrDuplicateSlug):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "slug already in use")
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already in use")
	case errors.Is(err, domain.ErrAlreadyMember):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "already a member")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
