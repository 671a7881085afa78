package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/suggestion"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	resp     appsearch.Response
	err      error
	engine   string
	query    appsearch.QuerySuggestionRequest
	spelling appsearch.ElasticsearchRequest
}

func (f *fakeClient) Search(context.Context, string, appsearch.SearchRequest) (appsearch.Response, error) {
	return nil, nil
}

func (f *fakeClient) QuerySuggestion(_ context.Context, engine string, req appsearch.QuerySuggestionRequest) (appsearch.Response, error) {
	f.engine, f.query = engine, req
	return f.resp, f.err
}

func (f *fakeClient) ElasticsearchSearch(_ context.Context, engine string, req appsearch.ElasticsearchRequest) (appsearch.Response, error) {
	f.engine, f.spelling = engine, req
	return f.resp, f.err
}

func (f *fakeClient) LogClickthrough(context.Context, string, appsearch.ClickRequest) error {
	return nil
}

func decode(t *testing.T, body string) appsearch.Response {
	t.Helper()
	resp, err := appsearch.DecodeResponse([]byte(body))
	require.NoError(t, err)
	return resp
}

func newUseCase(client appsearch.IClient) suggestion.UseCase {
	return New(client, nil, log.NewNop(), Config{EnginePrefix: "prod"})
}

func TestBuildQuerySuggestionRequest(t *testing.T) {
	b, err := json.Marshal(buildQuerySuggestionRequest(model.Suggestion{QueryString: "hel", Limit: 5, Fields: []string{"title"}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":"hel","size":5,"types":{"documents":{"fields":["title"]}}}`, string(b))

	b, err = json.Marshal(buildQuerySuggestionRequest(model.Suggestion{QueryString: "hel"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":"hel"}`, string(b))
}

func TestBuildSpellingRequest(t *testing.T) {
	b, err := json.Marshal(buildSpellingRequest(model.Suggestion{QueryString: "helo wrld", Limit: 3, Fields: []string{"title", "content"}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"suggest":{
		"text": "helo wrld",
		"title": {"term": {"field": "title", "size": 3}},
		"content": {"term": {"field": "content", "size": 3}}
	}}`, string(b))
}

func TestQuerySuggestion(t *testing.T) {
	client := &fakeClient{resp: decode(t, `{
		"meta": {"request_id": "r"},
		"results": {"documents": [{"suggestion": "hello"}, {"suggestion": ""}, {"other": 1}, {"suggestion": "help"}]}
	}`)}

	out, err := newUseCase(client).QuerySuggestion(context.Background(), suggestion.Input{
		Index:      "content",
		Suggestion: model.Suggestion{QueryString: "hel"},
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, []string{"hello", "help"}, out.Items)
	assert.Equal(t, "prod-content", client.engine)
}

func TestQuerySuggestionFailures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{"transport", &fakeClient{err: errors.New("dial tcp: refused")}},
		{"status", &fakeClient{err: &appsearch.ResponseError{StatusCode: 401, Body: "unauthorized"}}},
		{"engine errors", &fakeClient{resp: appsearch.Response{"errors": []any{"nope"}}}},
		{"missing results", &fakeClient{resp: appsearch.Response{"meta": map[string]any{"a": 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newUseCase(tt.client).QuerySuggestion(context.Background(), suggestion.Input{
				Index:      "content",
				Suggestion: model.Suggestion{QueryString: "x"},
			})
			require.NoError(t, err)
			assert.False(t, out.Success)
			assert.Empty(t, out.Items)
		})
	}
}

func TestSuggestionInputErrors(t *testing.T) {
	uc := newUseCase(&fakeClient{})
	ctx := context.Background()

	_, err := uc.QuerySuggestion(ctx, suggestion.Input{Suggestion: model.Suggestion{QueryString: "x"}})
	assert.ErrorIs(t, err, suggestion.ErrIndexRequired)

	_, err = uc.QuerySuggestion(ctx, suggestion.Input{Index: "content"})
	assert.ErrorIs(t, err, suggestion.ErrQueryRequired)

	_, err = uc.SpellingSuggestion(ctx, suggestion.Input{Index: "content", Suggestion: model.Suggestion{QueryString: "x"}})
	assert.ErrorIs(t, err, suggestion.ErrFieldsRequired)
}

func TestSpellingSuggestion(t *testing.T) {
	client := &fakeClient{resp: decode(t, `{
		"suggest": {
			"content": [
				{"text": "helo", "options": [{"text": "ignored"}]},
				{"text": "wrld", "options": [{"text": "world"}, {"text": "hello"}]}
			],
			"title": [
				{"text": "wrld", "options": [{"text": "hello"}, {"text": "word"}]}
			],
			"summary": [{"text": "wrld", "options": []}]
		}
	}`)}

	out, err := newUseCase(client).SpellingSuggestion(context.Background(), suggestion.Input{
		Index:      "content",
		Suggestion: model.Suggestion{QueryString: "helo wrld", Fields: []string{"title", "content"}},
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, []string{"hello", "word", "world"}, out.Items)
}

func TestSpellingSuggestionInvalidResponse(t *testing.T) {
	for _, body := range []string{`{"errors":{"type":"parse"}}`, `{"suggest":{}}`, `{}`} {
		client := &fakeClient{resp: decode(t, body)}
		out, err := newUseCase(client).SpellingSuggestion(context.Background(), suggestion.Input{
			Index:      "content",
			Suggestion: model.Suggestion{QueryString: "x", Fields: []string{"title"}},
		})
		require.NoError(t, err)
		assert.False(t, out.Success, body)
	}
}

func TestValidateSpellingResponseMessage(t *testing.T) {
	err := validateSpellingResponse(appsearch.Response{})
	assert.EqualError(t, err, "Missing required top level fields for query suggestions: suggest")
}
