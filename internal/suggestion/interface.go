package suggestion

import (
	"context"

	"appsearch-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// QuerySuggestion returns completions for a partial query.
	QuerySuggestion(ctx context.Context, input Input) (model.Suggestions, error)
	// SpellingSuggestion returns corrected spellings of a query.
	SpellingSuggestion(ctx context.Context, input Input) (model.Suggestions, error)
}
