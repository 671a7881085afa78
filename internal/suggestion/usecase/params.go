package usecase

import (
	"strings"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/suggestion"
	"appsearch-srv/pkg/appsearch"
)

func (uc *implUseCase) engineName(index string) string {
	if uc.cfg.EnginePrefix == "" {
		return index
	}
	return uc.cfg.EnginePrefix + "-" + index
}

func validateInput(input suggestion.Input) error {
	if strings.TrimSpace(input.Index) == "" {
		return suggestion.ErrIndexRequired
	}
	if strings.TrimSpace(input.Suggestion.QueryString) == "" {
		return suggestion.ErrQueryRequired
	}
	return nil
}

func buildQuerySuggestionRequest(s model.Suggestion) appsearch.QuerySuggestionRequest {
	req := appsearch.QuerySuggestionRequest{Query: s.QueryString}
	if s.Limit > 0 {
		req.Size = s.Limit
	}
	if len(s.Fields) > 0 {
		req.Types = &appsearch.SuggestionTypes{
			Documents: appsearch.SuggestionDocuments{Fields: s.Fields},
		}
	}
	return req
}

// buildSpellingRequest adds one term suggester per field next to the shared text.
func buildSpellingRequest(s model.Suggestion) appsearch.ElasticsearchRequest {
	suggest := map[string]any{"text": s.QueryString}
	for _, field := range s.Fields {
		term := appsearch.TermSuggesterOptions{Field: field}
		if s.Limit > 0 {
			term.Size = s.Limit
		}
		suggest[field] = appsearch.TermSuggester{Term: term}
	}
	return appsearch.ElasticsearchRequest{Suggest: suggest}
}
