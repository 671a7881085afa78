package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError(t *testing.T) {
	err := NewHTTPError(400, "Invalid filter")
	assert.Equal(t, "400: Invalid filter", err.Error())
}

func TestValidationErrorCollector(t *testing.T) {
	c := NewValidationErrorCollector()
	assert.False(t, c.HasError())

	c.Add("filter", "mixed clause types")
	c.Add("page", "limit must be positive")

	assert.True(t, c.HasError())
	assert.Len(t, c.Errors(), 2)
	assert.Equal(t, "filter: mixed clause types", c.Errors()[0].Error())
}

func TestValidationErrorCollectorError(t *testing.T) {
	c := NewValidationErrorCollector()
	c.Add("a", "x")
	c.Add("b", "y")
	assert.Equal(t, "a: x; b: y", c.Error())
}
