package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/httputil"
	"github.com/limbo/goalkeeper/pkg/metrics"
)

// writeServiceError maps a service error to its HTTP status. Entities of
// other users are reported as missing.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	if errors.Is(err, errorvalues.ErrPersistenceFailure) {
		metrics.PersistenceError(op)
	}
	switch {
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrInvalidDate),
		errors.Is(err, errorvalues.ErrInvalidDuration),
		errors.Is(err, errorvalues.ErrMissingDurationInput),
		errors.Is(err, errorvalues.ErrEmptyContent):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrNotAuthenticated):
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
	case errors.Is(err, errorvalues.ErrGoalNotFound),
		errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op+" error: goal not found or has different owner", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "entity doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrSectionNotFound):
		logger.Error(op + " error: unexist section")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "section doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrIllegalTransition):
		logger.Error(op+" error: illegal transition", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, "goal status doesn't allow this action", nil)
	case errors.Is(err, errorvalues.ErrStreakConflict),
		errors.Is(err, errorvalues.ErrStatusChangedMeanwhile):
		logger.Error(op+" error: concurrent modification", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, "goal was changed concurrently, try again", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

// authorizedUID returns the current user or writes 401.
func authorizedUID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", err)
		return uuid.UUID{}, false
	}
	return uid, true
}

// pathID parses the {id} path value or writes 400.
func pathID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}
