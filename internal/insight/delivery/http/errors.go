package http

import (
	"errors"
	"net/http"

	"timesheet-assistant/internal/insight"
	pkgErrors "timesheet-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors for pkg/response.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, insight.ErrNoDraft):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no draft for this session, build one first")
	case errors.Is(err, insight.ErrNoManager):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no reporting team for this user")
	case errors.Is(err, insight.ErrSourceUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "upstream source unavailable, try again later")
	case errors.Is(err, insight.ErrNoRecordIDs):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "record_ids is required")
	case errors.Is(err, insight.ErrEmptyReason):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "a rejection needs a reason")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
