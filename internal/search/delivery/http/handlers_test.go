package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"appsearch-srv/internal/middleware"
	"appsearch-srv/internal/model"
	"appsearch-srv/internal/search"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/log"
	"appsearch-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	inputs  []search.SearchInput
	results model.Results
	err     error
	deleted int
}

func (f *fakeUseCase) Search(_ context.Context, input search.SearchInput) (model.Results, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return model.Results{}, f.err
	}
	r := f.results
	r.Query = input.Query
	return r, nil
}

func (f *fakeUseCase) MultiSearch(_ context.Context, inputs []search.SearchInput) ([]model.Results, error) {
	f.inputs = append(f.inputs, inputs...)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Results, len(inputs))
	for i := range inputs {
		out[i] = f.results
	}
	return out, nil
}

func (f *fakeUseCase) Compile(q *model.Query) (appsearch.SearchRequest, error) {
	return appsearch.SearchRequest{Query: q.QueryString}, f.err
}

func (f *fakeUseCase) InvalidateCache(context.Context, string) (int, error) {
	return f.deleted, f.err
}

func newTestRouter(uc search.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc).RegisterRoutes(r.Group(""), middleware.New(log.NewNop(), "secret"))
	return r
}

func do(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchHandler(t *testing.T) {
	uc := &fakeUseCase{results: model.Results{
		Success: true,
		Records: []model.Record{{Fields: map[string]model.Field{"Title": {Raw: "Home"}}}},
		Paginator: paginator.Paginator{
			Total: 1, Count: 1, PerPage: 10, CurrentPage: 1,
		},
	}}
	r := newTestRouter(uc)

	body := `{
		"query": "home",
		"filter": {"conjunction": "OR", "clauses": [
			{"group": {"conjunction": "AND", "clauses": [{"target": "status", "comparison": "equal", "value": "live"}]}},
			{"group": {"clauses": [{"target": "price", "comparison": "RANGE", "value": {"from": 1}}]}}
		]},
		"facets": [{"property": "colour", "type": "value", "limit": 5}],
		"sort": [{"field": "title", "direction": "DESC"}],
		"limit": 10,
		"offset": 20,
		"result_fields": [{"name": "title", "formatted": true}],
		"tags": ["web"]
	}`
	w := do(r, http.MethodPost, "/api/v1/search/content", body)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, uc.inputs, 1)
	input := uc.inputs[0]
	assert.Equal(t, "content", input.Index)

	q := input.Query
	assert.Equal(t, "home", q.QueryString)
	assert.Equal(t, model.ConjunctionOr, q.Filter.Conjunction)
	require.Len(t, q.Filter.Clauses, 2)
	assert.Equal(t, model.ClauseKindGroup, q.Filter.Clauses[0].Kind())
	inner := q.Filter.Clauses[0].Criteria().Clauses[0].Criterion()
	assert.Equal(t, model.ComparisonEqual, inner.Comparison)
	assert.Equal(t, model.Pagination{Limit: 10, Offset: 20}, q.Pagination)
	assert.Equal(t, []string{"colour"}, q.Facets.Properties())
	assert.Equal(t, model.FacetTypeValue, q.Facets.ForProperty("colour")[0].Type)
	assert.Equal(t, []string{"web"}, q.Tags)

	var resp struct {
		Data searchResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Success)
	assert.Equal(t, "Home", resp.Data.Records[0].Fields["Title"].Raw)
	assert.Equal(t, int64(1), resp.Data.Paginator.Total)
}

func TestSearchHandlerPageParams(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/search/content", `{"page": 3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.Pagination{PageSize: paginator.DefaultLimit, PageNum: 3}, uc.inputs[0].Query.Pagination)
}

func TestSearchHandlerErrors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		w := do(newTestRouter(&fakeUseCase{}), http.MethodPost, "/api/v1/search/content", `{"query":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation", func(t *testing.T) {
		w := do(newTestRouter(&fakeUseCase{}), http.MethodPost, "/api/v1/search/content", `{"sort":[{"field":""}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "sort 0 has no field")
	})

	t.Run("compile error", func(t *testing.T) {
		uc := &fakeUseCase{err: search.ErrMixedClauseTypes}
		w := do(newTestRouter(uc), http.MethodPost, "/api/v1/search/content", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid search filter")
	})
}

func TestMultiSearchHandler(t *testing.T) {
	uc := &fakeUseCase{results: model.Results{Success: true}}
	r := newTestRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/multi-search",
		`{"searches":[{"index":"a","query":"one"},{"index":"b","query":"two","page_size":5}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, uc.inputs, 2)
	assert.Equal(t, "a", uc.inputs[0].Index)
	assert.Equal(t, "two", uc.inputs[1].Query.QueryString)
	assert.Equal(t, 5, uc.inputs[1].Query.Pagination.PageSize)

	var resp struct {
		Data multiSearchResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Results, 2)
}

func TestInvalidateCacheHandler(t *testing.T) {
	uc := &fakeUseCase{deleted: 4}
	r := newTestRouter(uc)

	w := do(r, http.MethodDelete, "/api/v1/search/content/cache", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodDelete, "/api/v1/search/content/cache", "", "Authorization", "Bearer secret")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":4`)

	uc.err = search.ErrCacheDisabled
	w = do(r, http.MethodDelete, "/api/v1/search/content/cache", "", "Authorization", "Bearer secret")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
