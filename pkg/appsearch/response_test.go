package appsearch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolations(t *testing.T) {
	var v Violations
	assert.NoError(t, v.Err("Missing: %s"))

	v.Require("meta", false)
	v.Require("engine", true)
	v.Require("results", false)

	err := v.Err("Missing required top level fields: %s")
	require.Error(t, err)
	assert.Equal(t, "Missing required top level fields: meta, results", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidResponse))
	assert.Equal(t, []string{"meta", "results"}, v.Missing())
}

func TestResponseLookup(t *testing.T) {
	resp, err := DecodeResponse([]byte(`{"meta":{"engine":{"name":"content"},"flag":"x"},"errors":["bad"]}`))
	require.NoError(t, err)

	name, ok := resp.Lookup("meta", "engine", "name")
	assert.True(t, ok)
	assert.Equal(t, "content", name)

	_, ok = resp.Lookup("meta", "flag", "nested")
	assert.False(t, ok)

	_, ok = resp.Object("meta", "flag")
	assert.False(t, ok)

	errs, ok := resp.ReportedErrors()
	assert.True(t, ok)
	assert.Equal(t, `["bad"]`, errs)
}
