package appsearch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgHttp "appsearch-srv/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) IClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{Host: srv.URL + "/", Token: "private-key"}, pkgHttp.NewClient(pkgHttp.ClientConfig{Timeout: time.Second}))
	require.NoError(t, err)
	return c
}

func TestNewReportsAllMissingSettings(t *testing.T) {
	_, err := New(Config{}, pkgHttp.NewClient(pkgHttp.DefaultConfig()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSettings))
	assert.Contains(t, err.Error(), "appsearch.host, appsearch.token")

	_, err = New(Config{Host: "http://localhost"}, pkgHttp.NewClient(pkgHttp.DefaultConfig()))
	assert.Contains(t, err.Error(), "appsearch.token")
	assert.NotContains(t, err.Error(), "appsearch.host")

	_, err = New(Config{Host: "http://localhost", Token: "t"}, nil)
	assert.ErrorIs(t, err, ErrHTTPClientMissing)
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/as/v1/engines/dev-content/search", r.URL.Path)
		assert.Equal(t, "Bearer private-key", r.Header.Get("Authorization"))

		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"query":"hello","page":{"size":10,"current":2}}`, string(b))

		_, _ = w.Write([]byte(`{"meta":{"request_id":"abc","page":{"total_results":12}},"results":[]}`))
	})

	resp, err := c.Search(context.Background(), "dev-content", SearchRequest{
		Query: "hello",
		Page:  &PageRequest{Size: 10, Current: 2},
	})
	require.NoError(t, err)

	meta := resp["meta"].(map[string]any)
	assert.Equal(t, "abc", meta["request_id"])
	assert.Equal(t, json.Number("12"), meta["page"].(map[string]any)["total_results"])
}

func TestSearchErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":["Could not find engine."]}`))
	})

	_, err := c.Search(context.Background(), "missing", SearchRequest{})

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
	assert.Contains(t, respErr.Body, "Could not find engine.")
}

func TestQuerySuggestionAndElasticsearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		switch r.URL.Path {
		case "/api/as/v1/engines/content/query_suggestion":
			assert.JSONEq(t, `{"query":"hel","size":3,"types":{"documents":{"fields":["title"]}}}`, string(b))
		case "/api/as/v1/engines/content/elasticsearch/_search":
			assert.JSONEq(t, `{"suggest":{"text":"helo","title":{"term":{"field":"title","size":2}}}}`, string(b))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.QuerySuggestion(context.Background(), "content", QuerySuggestionRequest{
		Query: "hel",
		Size:  3,
		Types: &SuggestionTypes{Documents: SuggestionDocuments{Fields: []string{"title"}}},
	})
	require.NoError(t, err)

	_, err = c.ElasticsearchSearch(context.Background(), "content", ElasticsearchRequest{
		Suggest: map[string]any{
			"text":  "helo",
			"title": TermSuggester{Term: TermSuggesterOptions{Field: "title", Size: 2}},
		},
	})
	require.NoError(t, err)
}

func TestLogClickthrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/as/v1/engines/content/click", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"query":"hello","document_id":"doc-1"}`, string(b))
		w.WriteHeader(http.StatusOK)
	})

	err := c.LogClickthrough(context.Background(), "content", ClickRequest{Query: "hello", DocumentID: "doc-1"})
	assert.NoError(t, err)
}

func TestFilterClauseMarshal(t *testing.T) {
	nested := NewFilters()
	nested.None = append(nested.None, FieldClause("status", "draft"))

	f := NewFilters()
	f.All = append(f.All, FieldClause("price", RangeValue{From: 1}), NestedClause(nested))

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"all": [
			{"price": {"from": 1}},
			{"all": [], "any": [], "none": [{"status": "draft"}]}
		],
		"any": [],
		"none": []
	}`, string(b))
}

func TestDecodeResponseRejectsNonObjects(t *testing.T) {
	_, err := DecodeResponse([]byte(`[]`))
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = DecodeResponse([]byte(`null`))
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
