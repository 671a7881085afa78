package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/search"
	"appsearch-srv/internal/search/repository"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/metrics"
)

// Search - Main search method
// Flow: compile → check cache → call engine → validate → decode → cache
func (uc *implUseCase) Search(ctx context.Context, input search.SearchInput) (model.Results, error) {
	req, err := uc.prepare(ctx, input)
	if err != nil {
		return model.Results{}, err
	}
	return uc.execute(ctx, uc.engineName(input.Index), input.Query, req), nil
}

// prepare validates the input and compiles its query.
func (uc *implUseCase) prepare(ctx context.Context, input search.SearchInput) (appsearch.SearchRequest, error) {
	if strings.TrimSpace(input.Index) == "" {
		return appsearch.SearchRequest{}, search.ErrIndexRequired
	}
	if input.Query == nil {
		return appsearch.SearchRequest{}, search.ErrQueryRequired
	}

	req, err := compileQuery(input.Query)
	if err != nil {
		uc.metrics.Observe(metrics.OperationSearch, metrics.OutcomeCompileError, 0)
		uc.l.Warnf(ctx, "search.usecase.Search: Failed to compile query for %s: %v", input.Index, err)
		return appsearch.SearchRequest{}, err
	}
	return req, nil
}

// execute never fails: engine and response errors are logged and reported
// through an unsuccessful empty Results.
func (uc *implUseCase) execute(ctx context.Context, engine string, q *model.Query, req appsearch.SearchRequest) model.Results {
	cacheKey := ""
	if uc.cacheEnabled() {
		key, err := uc.generateCacheKey(engine, req)
		if err != nil {
			uc.l.Warnf(ctx, "search.usecase.Search: Failed to build cache key: %v", err)
		} else {
			cacheKey = key
			if cached, ok := uc.fromCache(ctx, q, cacheKey); ok {
				return cached
			}
		}
	}

	startTime := time.Now()
	resp, err := uc.client.Search(ctx, engine, req)
	elapsed := time.Since(startTime)
	if err != nil {
		uc.metrics.Observe(metrics.OperationSearch, metrics.OutcomeEngineError, elapsed)
		uc.logEngineError(ctx, "search.usecase.Search", err)
		return model.NewResults(q)
	}

	if err := validateResponse(resp); err != nil {
		uc.metrics.Observe(metrics.OperationSearch, metrics.OutcomeInvalidResponse, elapsed)
		uc.l.Errorf(ctx, "search.usecase.Search: Invalid response from engine %s: %v", engine, err)
		return model.NewResults(q)
	}

	results, err := uc.decodeResults(q, resp)
	if err != nil {
		uc.metrics.Observe(metrics.OperationSearch, metrics.OutcomeInvalidResponse, elapsed)
		uc.l.Errorf(ctx, "search.usecase.Search: Failed to decode response from engine %s: %v", engine, err)
		return model.NewResults(q)
	}

	uc.metrics.Observe(metrics.OperationSearch, metrics.OutcomeSuccess, elapsed)
	uc.l.Debugf(ctx, "search.usecase.Search: engine=%s records=%d total=%d", engine, len(results.Records), results.Paginator.Total)

	if cacheKey != "" {
		uc.saveToCache(ctx, cacheKey, resp)
	}
	return results
}

func (uc *implUseCase) logEngineError(ctx context.Context, scope string, err error) {
	var respErr *appsearch.ResponseError
	if errors.As(err, &respErr) {
		uc.l.Errorf(ctx, "%s: Elastic error: %s", scope, respErr.Body)
		return
	}
	uc.l.Errorf(ctx, "%s: %v", scope, err)
}

// fromCache decodes a cached response. Entries that no longer validate are ignored.
func (uc *implUseCase) fromCache(ctx context.Context, q *model.Query, cacheKey string) (model.Results, bool) {
	data, err := uc.cacheRepo.GetResponse(ctx, cacheKey)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "search.usecase.Search: Failed to read cache: %v", err)
		}
		uc.metrics.CacheRead(false)
		return model.Results{}, false
	}

	resp, err := appsearch.DecodeResponse(data)
	if err == nil {
		err = validateResponse(resp)
	}
	var results model.Results
	if err == nil {
		results, err = uc.decodeResults(q, resp)
	}
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.Search: Ignoring unreadable cache entry %s: %v", cacheKey, err)
		uc.metrics.CacheRead(false)
		return model.Results{}, false
	}

	uc.metrics.CacheRead(true)
	uc.metrics.Observe(metrics.OperationSearch, metrics.OutcomeCacheHit, 0)
	uc.l.Debugf(ctx, "search.usecase.Search: cache hit for key %s", cacheKey)
	return results, true
}

func (uc *implUseCase) saveToCache(ctx context.Context, cacheKey string, resp appsearch.Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.Search: Failed to encode response for cache: %v", err)
		return
	}
	if err := uc.cacheRepo.SaveResponse(ctx, cacheKey, data, uc.cfg.CacheTTL); err != nil {
		uc.l.Warnf(ctx, "search.usecase.Search: Failed to cache response: %v", err)
	}
}

// InvalidateCache - Drop every cached response of an index
func (uc *implUseCase) InvalidateCache(ctx context.Context, index string) (int, error) {
	if strings.TrimSpace(index) == "" {
		return 0, search.ErrIndexRequired
	}
	if uc.cacheRepo == nil {
		return 0, search.ErrCacheDisabled
	}

	deleted, err := uc.cacheRepo.InvalidateEngine(ctx, uc.engineName(index))
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.InvalidateCache: %v", err)
		return deleted, err
	}
	uc.l.Infof(ctx, "search.usecase.InvalidateCache: removed %d cached responses for %s", deleted, index)
	return deleted, nil
}
