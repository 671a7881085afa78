package http

import (
	"errors"
	"net/http"

	"appsearch-srv/internal/suggestion"
	pkgErrors "appsearch-srv/pkg/errors"
)

var (
	errBadBody = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Malformed request body",
	)
	errIndexRequired = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Index is required",
	)
	errQueryRequired = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Query is required",
	)
	errFieldsRequired = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "At least one field is required for spelling suggestions",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrIndexRequired):
		return errIndexRequired
	case errors.Is(err, suggestion.ErrQueryRequired):
		return errQueryRequired
	case errors.Is(err, suggestion.ErrFieldsRequired):
		return errFieldsRequired
	default:
		return err
	}
}
