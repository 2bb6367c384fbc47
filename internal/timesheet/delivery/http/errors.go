package http

import (
	"errors"
	"net/http"

	"timesheet-assistant/internal/timesheet"
	pkgErrors "timesheet-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors for pkg/response.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timesheet.ErrNoDraft):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no draft for this session, build one first")
	case errors.Is(err, timesheet.ErrSourceUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "upstream source unavailable, try again later")
	case errors.Is(err, timesheet.ErrAlreadySubmitted):
		return pkgErrors.NewHTTPError(http.StatusConflict, "timesheet already submitted for this week, delete the existing records first")
	case errors.Is(err, timesheet.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
	case errors.Is(err, timesheet.ErrNoRecordIDs):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "record_ids is required")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
