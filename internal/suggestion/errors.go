package suggestion

import "errors"

var (
	ErrIndexRequired  = errors.New("suggestion: index is required")
	ErrQueryRequired  = errors.New("suggestion: query string is required")
	ErrFieldsRequired = errors.New("suggestion: spelling suggestions need at least one field")
)
