package search

import "errors"

// Compilation errors. These reach the caller and no request is sent.
var (
	ErrMixedClauseTypes      = errors.New("search: a criteria node can only hold nested criteria or criterion clauses, not a mixture of both")
	ErrUnsupportedComparison = errors.New("search: unsupported comparison")
	ErrInvalidRangeValue     = errors.New(`search: range value must contain one or both of "from" and "to"`)
	ErrUnknownClause         = errors.New("search: unknown clause kind")
	ErrUnknownFacetType      = errors.New("search: unknown facet type")
)

// Input errors.
var (
	ErrIndexRequired    = errors.New("search: index is required")
	ErrQueryRequired    = errors.New("search: query is required")
	ErrTooManyQueries   = errors.New("search: too many queries")
	ErrInvalidPageLimit = errors.New("search: pagination limit must be positive")
)

// ErrCacheDisabled is returned by InvalidateCache when no cache is configured.
var ErrCacheDisabled = errors.New("search: response cache is not configured")
