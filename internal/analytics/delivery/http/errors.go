package http

import (
	"errors"
	"net/http"

	"appsearch-srv/internal/analytics"
	pkgErrors "appsearch-srv/pkg/errors"
)

var (
	errBadBody = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Malformed request body",
	)
	errInvalidClick = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Click must name an engine and a document",
	)
	errAnalyticsDisabled = pkgErrors.NewHTTPError(
		http.StatusNotFound, "Click tracking is not enabled",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrEngineRequired),
		errors.Is(err, analytics.ErrDocumentRequired):
		return errInvalidClick
	case errors.Is(err, analytics.ErrAnalyticsDisabled):
		return errAnalyticsDisabled
	default:
		return err
	}
}
