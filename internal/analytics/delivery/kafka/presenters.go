package kafka

import (
	"appsearch-srv/internal/analytics"
	"appsearch-srv/internal/model"
)

// ToClickMessage maps a click event to its wire form.
func ToClickMessage(e analytics.ClickEvent) ClickMessage {
	return ClickMessage{
		EventID:     e.EventID,
		QueryString: e.Data.QueryString,
		EngineName:  e.Data.EngineName,
		DocumentID:  e.Data.DocumentID,
		RequestID:   e.Data.RequestID,
		Tags:        e.Tags,
		OccurredAt:  e.OccurredAt,
	}
}

// ToClickEvent is the inverse of ToClickMessage.
func (m ClickMessage) ToClickEvent() analytics.ClickEvent {
	return analytics.ClickEvent{
		EventID: m.EventID,
		Data: model.AnalyticsData{
			QueryString: m.QueryString,
			EngineName:  m.EngineName,
			DocumentID:  m.DocumentID,
			RequestID:   m.RequestID,
		},
		Tags:       m.Tags,
		OccurredAt: m.OccurredAt,
	}
}
