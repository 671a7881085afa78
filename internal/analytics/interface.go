package analytics

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// TrackClick records that a search hit was clicked. The event is queued on
	// Kafka when a producer is configured, otherwise it is sent straight away.
	TrackClick(ctx context.Context, input ClickInput) error
	// ProcessClick reports one click event to the engine. Engine failures are
	// logged, not returned.
	ProcessClick(ctx context.Context, event ClickEvent) error
}

// Producer publishes click events for asynchronous processing.
type Producer interface {
	PublishClick(ctx context.Context, event ClickEvent) error
}
