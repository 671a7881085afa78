package appsearch

import (
	"encoding/json"
	"fmt"
	"strings"
)

// InvalidResponseError explains why a response was rejected. Reason is the
// full message; callers tell causes apart by it.
type InvalidResponseError struct {
	Reason string
}

func (e *InvalidResponseError) Error() string { return e.Reason }

func (e *InvalidResponseError) Unwrap() error { return ErrInvalidResponse }

// Invalid returns an InvalidResponseError with a formatted reason.
func Invalid(format string, args ...any) error {
	return &InvalidResponseError{Reason: fmt.Sprintf(format, args...)}
}

// Violations collects missing fields so they can be reported in one error.
type Violations struct {
	missing []string
}

// Require records field as missing unless present is true.
func (v *Violations) Require(field string, present bool) {
	if !present {
		v.missing = append(v.missing, field)
	}
}

// Missing returns the recorded fields in order.
func (v *Violations) Missing() []string {
	return v.missing
}

// Err returns nil when nothing is missing, otherwise an InvalidResponseError
// whose reason is format applied to the comma separated field list.
func (v *Violations) Err(format string) error {
	if len(v.missing) == 0 {
		return nil
	}
	return Invalid(format, strings.Join(v.missing, ", "))
}

// ReportedErrors returns the serialized "errors" payload when the key is present.
func (r Response) ReportedErrors() (string, bool) {
	errs, ok := r["errors"]
	if !ok {
		return "", false
	}
	b, err := json.Marshal(errs)
	if err != nil {
		return fmt.Sprintf("%v", errs), true
	}
	return string(b), true
}

// Lookup walks nested objects along path. It reports false when a key is
// missing or an intermediate value is not an object.
func (r Response) Lookup(path ...string) (any, bool) {
	var cur any = map[string]any(r)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Object returns the object found at path.
func (r Response) Object(path ...string) (map[string]any, bool) {
	v, ok := r.Lookup(path...)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}
