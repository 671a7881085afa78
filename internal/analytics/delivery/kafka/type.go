package kafka

import "time"

// ClickMessage - Kafka message cho appsearch.analytics.clicks
type ClickMessage struct {
	EventID     string    `json:"event_id"`
	QueryString string    `json:"query_string"`
	EngineName  string    `json:"engine_name"`
	DocumentID  string    `json:"document_id"`
	RequestID   string    `json:"request_id,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
