package http

import (
	"errors"
	"net/http"

	"appsearch-srv/internal/search"
	pkgErrors "appsearch-srv/pkg/errors"
)

var (
	errInvalidFilter = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid search filter",
	)
	errInvalidFacet = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid search facet",
	)
	errInvalidPagination = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid pagination",
	)
	errIndexRequired = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Index is required",
	)
	errQueryRequired = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Query is required",
	)
	errTooManyQueries = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Too many queries in one multi search",
	)
	errCacheDisabled = pkgErrors.NewHTTPError(
		http.StatusNotFound, "Response cache is not enabled",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrMixedClauseTypes),
		errors.Is(err, search.ErrUnsupportedComparison),
		errors.Is(err, search.ErrInvalidRangeValue),
		errors.Is(err, search.ErrUnknownClause):
		return pkgErrors.NewHTTPError(errInvalidFilter.Code, errInvalidFilter.Message+": "+err.Error())
	case errors.Is(err, search.ErrUnknownFacetType):
		return pkgErrors.NewHTTPError(errInvalidFacet.Code, errInvalidFacet.Message+": "+err.Error())
	case errors.Is(err, search.ErrInvalidPageLimit):
		return errInvalidPagination
	case errors.Is(err, search.ErrIndexRequired):
		return errIndexRequired
	case errors.Is(err, search.ErrQueryRequired):
		return errQueryRequired
	case errors.Is(err, search.ErrTooManyQueries):
		return errTooManyQueries
	case errors.Is(err, search.ErrCacheDisabled):
		return errCacheDisabled
	default:
		return err
	}
}
