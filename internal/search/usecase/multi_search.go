package usecase

import (
	"context"
	"fmt"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/search"
	"appsearch-srv/pkg/appsearch"

	"golang.org/x/sync/errgroup"
)

// MultiSearch - Run several searches concurrently
// Every query is compiled before anything is sent; one bad query fails the call.
// Results keep the order of inputs.
func (uc *implUseCase) MultiSearch(ctx context.Context, inputs []search.SearchInput) ([]model.Results, error) {
	if len(inputs) == 0 {
		return []model.Results{}, nil
	}
	if len(inputs) > search.MaxMultiSearchQueries {
		return nil, fmt.Errorf("%w: %d (max %d)", search.ErrTooManyQueries, len(inputs), search.MaxMultiSearchQueries)
	}

	reqs := make([]appsearch.SearchRequest, len(inputs))
	for i, input := range inputs {
		req, err := uc.prepare(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		reqs[i] = req
	}

	out := make([]model.Results, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Concurrency)
	for i := range inputs {
		i := i
		g.Go(func() error {
			out[i] = uc.execute(gctx, uc.engineName(inputs[i].Index), inputs[i].Query, reqs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
