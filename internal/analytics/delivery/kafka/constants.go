package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	TopicClicks = "appsearch.analytics.clicks"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	ConsumerGroupClicks = "appsearch-analytics-clicks"
)
