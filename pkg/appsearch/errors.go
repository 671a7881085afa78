package appsearch

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSettings   = errors.New("appsearch: required settings missing")
	ErrHTTPClientMissing = errors.New("appsearch: http client required")
	ErrInvalidResponse   = errors.New("appsearch: response is not a JSON object")
)

// ResponseError is returned when the engine answers with a 4xx or 5xx status.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("appsearch: status %d: %s", e.StatusCode, e.Body)
}
