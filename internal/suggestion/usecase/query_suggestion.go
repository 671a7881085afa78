package usecase

import (
	"context"
	"errors"
	"time"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/suggestion"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/metrics"
)

// QuerySuggestion - Completions for a partial query
// Engine failures are logged and reported through Success.
func (uc *implUseCase) QuerySuggestion(ctx context.Context, input suggestion.Input) (model.Suggestions, error) {
	if err := validateInput(input); err != nil {
		return model.Suggestions{}, err
	}

	engine := uc.engineName(input.Index)
	out := model.Suggestions{Items: []string{}}

	startTime := time.Now()
	resp, err := uc.client.QuerySuggestion(ctx, engine, buildQuerySuggestionRequest(input.Suggestion))
	elapsed := time.Since(startTime)
	if err != nil {
		uc.metrics.Observe(metrics.OperationQuerySuggestion, metrics.OutcomeEngineError, elapsed)
		uc.logEngineError(ctx, "suggestion.usecase.QuerySuggestion", err)
		return out, nil
	}

	if err := validateQuerySuggestionResponse(resp); err != nil {
		uc.metrics.Observe(metrics.OperationQuerySuggestion, metrics.OutcomeInvalidResponse, elapsed)
		uc.l.Errorf(ctx, "suggestion.usecase.QuerySuggestion: Invalid response from engine %s: %v", engine, err)
		return out, nil
	}

	documents, _ := resp.Lookup("results", "documents")
	list, _ := documents.([]any)
	for _, d := range list {
		doc, ok := d.(map[string]any)
		if !ok {
			continue
		}
		text, _ := doc["suggestion"].(string)
		if text == "" {
			continue
		}
		out.Items = append(out.Items, text)
	}

	uc.metrics.Observe(metrics.OperationQuerySuggestion, metrics.OutcomeSuccess, elapsed)
	out.Success = true
	return out, nil
}

func (uc *implUseCase) logEngineError(ctx context.Context, scope string, err error) {
	var respErr *appsearch.ResponseError
	if errors.As(err, &respErr) {
		uc.l.Errorf(ctx, "%s: Elastic error: %s", scope, respErr.Body)
		return
	}
	uc.l.Errorf(ctx, "%s: %v", scope, err)
}
