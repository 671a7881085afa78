package analytics

import (
	"time"

	"appsearch-srv/internal/model"
)

// ClickInput is a click on a record, carrying the data captured when the
// record was returned.
type ClickInput struct {
	Data model.AnalyticsData
	Tags []string
}

// ClickEvent is the queued form of a click.
type ClickEvent struct {
	EventID    string
	Data       model.AnalyticsData
	Tags       []string
	OccurredAt time.Time
}
