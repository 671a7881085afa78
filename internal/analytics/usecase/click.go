package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"appsearch-srv/internal/analytics"
	"appsearch-srv/internal/model"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/metrics"

	"github.com/google/uuid"
)

// TrackClick - Queue a click, or send it directly when no producer is configured
func (uc *implUseCase) TrackClick(ctx context.Context, input analytics.ClickInput) error {
	if !uc.cfg.Enabled {
		return analytics.ErrAnalyticsDisabled
	}
	if err := validateData(input.Data); err != nil {
		return err
	}

	event := analytics.ClickEvent{
		EventID:    uuid.NewString(),
		Data:       input.Data,
		Tags:       input.Tags,
		OccurredAt: uc.now().UTC(),
	}

	if uc.producer != nil {
		err := uc.producer.PublishClick(ctx, event)
		if err == nil {
			return nil
		}
		uc.l.Warnf(ctx, "analytics.usecase.TrackClick: publish failed, sending directly: %v", err)
	}

	return uc.ProcessClick(ctx, event)
}

// ProcessClick - Report a click to the engine
func (uc *implUseCase) ProcessClick(ctx context.Context, event analytics.ClickEvent) error {
	if err := validateData(event.Data); err != nil {
		return err
	}

	req := appsearch.ClickRequest{
		Query:      event.Data.QueryString,
		DocumentID: event.Data.DocumentID,
		RequestID:  event.Data.RequestID,
		Tags:       event.Tags,
	}

	startTime := time.Now()
	err := uc.client.LogClickthrough(ctx, event.Data.EngineName, req)
	elapsed := time.Since(startTime)
	if err != nil {
		uc.metrics.Observe(metrics.OperationClick, metrics.OutcomeEngineError, elapsed)
		var respErr *appsearch.ResponseError
		if errors.As(err, &respErr) {
			uc.l.Errorf(ctx, "analytics.usecase.ProcessClick: Elastic error: %s", respErr.Body)
		} else {
			uc.l.Errorf(ctx, "analytics.usecase.ProcessClick: Elastic error: %v", err)
		}
		return nil
	}

	uc.metrics.Observe(metrics.OperationClick, metrics.OutcomeSuccess, elapsed)
	uc.l.Debugf(ctx, "analytics.usecase.ProcessClick: click on %s recorded for engine %s", event.Data.DocumentID, event.Data.EngineName)
	return nil
}

func validateData(d model.AnalyticsData) error {
	if strings.TrimSpace(d.EngineName) == "" {
		return analytics.ErrEngineRequired
	}
	if strings.TrimSpace(d.DocumentID) == "" {
		return analytics.ErrDocumentRequired
	}
	return nil
}
