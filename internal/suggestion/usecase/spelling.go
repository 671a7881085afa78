package usecase

import (
	"context"
	"sort"
	"time"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/suggestion"
	"appsearch-srv/pkg/metrics"
)

// SpellingSuggestion - Corrected spellings of a query, one term suggester per field
// Engine failures are logged and reported through Success.
func (uc *implUseCase) SpellingSuggestion(ctx context.Context, input suggestion.Input) (model.Suggestions, error) {
	if err := validateInput(input); err != nil {
		return model.Suggestions{}, err
	}
	if len(input.Suggestion.Fields) == 0 {
		return model.Suggestions{}, suggestion.ErrFieldsRequired
	}

	engine := uc.engineName(input.Index)
	out := model.Suggestions{Items: []string{}}

	startTime := time.Now()
	resp, err := uc.client.ElasticsearchSearch(ctx, engine, buildSpellingRequest(input.Suggestion))
	elapsed := time.Since(startTime)
	if err != nil {
		uc.metrics.Observe(metrics.OperationSpelling, metrics.OutcomeEngineError, elapsed)
		uc.logEngineError(ctx, "suggestion.usecase.SpellingSuggestion", err)
		return out, nil
	}

	if err := validateSpellingResponse(resp); err != nil {
		uc.metrics.Observe(metrics.OperationSpelling, metrics.OutcomeInvalidResponse, elapsed)
		uc.l.Errorf(ctx, "suggestion.usecase.SpellingSuggestion: Invalid response from engine %s: %v", engine, err)
		return out, nil
	}

	suggest, _ := resp["suggest"].(map[string]any)
	seen := make(map[string]bool)
	for _, field := range fieldOrder(input.Suggestion.Fields, suggest) {
		entries, ok := suggest[field].([]any)
		if !ok || len(entries) == 0 {
			continue
		}
		// the last entry carries the options for the whole text
		last, ok := entries[len(entries)-1].(map[string]any)
		if !ok {
			continue
		}
		options, _ := last["options"].([]any)
		for _, o := range options {
			option, ok := o.(map[string]any)
			if !ok {
				continue
			}
			text, _ := option["text"].(string)
			if text == "" || seen[text] {
				continue
			}
			seen[text] = true
			out.Items = append(out.Items, text)
		}
	}

	uc.metrics.Observe(metrics.OperationSpelling, metrics.OutcomeSuccess, elapsed)
	out.Success = true
	return out, nil
}

// fieldOrder lists the requested fields first, then any others the engine sent, sorted.
func fieldOrder(requested []string, suggest map[string]any) []string {
	order := make([]string, 0, len(suggest))
	seen := make(map[string]bool, len(suggest))
	for _, f := range requested {
		if _, ok := suggest[f]; ok && !seen[f] {
			order = append(order, f)
			seen[f] = true
		}
	}
	var rest []string
	for f := range suggest {
		if !seen[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
