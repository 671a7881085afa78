package usecase

import (
	"context"
	"sync"
	"time"

	"appsearch-srv/internal/search"
	"appsearch-srv/internal/search/repository"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/log"
)

type fakeClient struct {
	mu       sync.Mutex
	resp     appsearch.Response
	err      error
	calls    int
	engines  []string
	requests []appsearch.SearchRequest
}

func (f *fakeClient) Search(_ context.Context, engine string, req appsearch.SearchRequest) (appsearch.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.engines = append(f.engines, engine)
	f.requests = append(f.requests, req)
	return f.resp, f.err
}

func (f *fakeClient) QuerySuggestion(context.Context, string, appsearch.QuerySuggestionRequest) (appsearch.Response, error) {
	return nil, nil
}

func (f *fakeClient) ElasticsearchSearch(context.Context, string, appsearch.ElasticsearchRequest) (appsearch.Response, error) {
	return nil, nil
}

func (f *fakeClient) LogClickthrough(context.Context, string, appsearch.ClickRequest) error {
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttl     time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) GetResponse(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.entries[key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return data, nil
}

func (f *fakeCache) SaveResponse(_ context.Context, key string, data []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = data
	f.ttl = ttl
	return nil
}

func (f *fakeCache) InvalidateEngine(_ context.Context, engine string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := repository.ResponseKey(engine, "")
	n := 0
	for k := range f.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(f.entries, k)
			n++
		}
	}
	return n, nil
}

func newTestUseCase(client appsearch.IClient, cache repository.CacheRepository, cfg Config) *implUseCase {
	return New(client, cache, nil, log.NewNop(), cfg).(*implUseCase)
}

var _ search.UseCase = (*implUseCase)(nil)

// validResponse is a well formed search response as the engine returns it.
func validResponse() appsearch.Response {
	resp, err := appsearch.DecodeResponse([]byte(`{
		"meta": {
			"request_id": "req-1",
			"engine": {"name": "content"},
			"page": {"current": 1, "size": 10, "total_pages": 1, "total_results": 2}
		},
		"results": [
			{"id": {"raw": "doc-1"}, "source_class": {"raw": "Page", "snippet": "<em>Page</em>"}, "title": {"raw": "Home"}},
			{"id": {"raw": "doc-2"}, "title": {"raw": "About"}}
		],
		"facets": {
			"colour": [{"type": "value", "data": [{"value": "red", "count": 3}, {"value": "blue"}]}],
			"age": [{"type": "range", "name": "ages", "data": [{"from": 1, "to": 10, "count": 2}]}]
		}
	}`))
	if err != nil {
		panic(err)
	}
	return resp
}
