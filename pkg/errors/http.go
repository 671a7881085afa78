package errors

import (
	"fmt"
	"strings"
)

// HTTPError is an error that knows which status code and message to expose.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewHTTPError returns a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ValidationError reports a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrorCollector accumulates validation errors.
type ValidationErrorCollector struct {
	errors []ValidationError
}

// NewValidationErrorCollector returns an empty collector.
func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{}
}

// Add appends a validation error.
func (c *ValidationErrorCollector) Add(field, message string) {
	c.errors = append(c.errors, ValidationError{Field: field, Message: message})
}

// HasError reports whether anything was collected.
func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

// Errors returns the collected errors.
func (c *ValidationErrorCollector) Errors() []ValidationError {
	return c.errors
}

func (c *ValidationErrorCollector) Error() string {
	msgs := make([]string, 0, len(c.errors))
	for _, e := range c.errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
