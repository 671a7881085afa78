package analytics

import "errors"

var (
	ErrAnalyticsDisabled = errors.New("analytics: click tracking is disabled")
	ErrEngineRequired    = errors.New("analytics: engine name is required")
	ErrDocumentRequired  = errors.New("analytics: document id is required")
)
