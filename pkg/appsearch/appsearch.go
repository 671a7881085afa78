package appsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

func (c *clientImpl) Search(ctx context.Context, engine string, req SearchRequest) (Response, error) {
	return c.post(ctx, engine, pathSearch, req)
}

func (c *clientImpl) QuerySuggestion(ctx context.Context, engine string, req QuerySuggestionRequest) (Response, error) {
	return c.post(ctx, engine, pathQuerySuggestion, req)
}

func (c *clientImpl) ElasticsearchSearch(ctx context.Context, engine string, req ElasticsearchRequest) (Response, error) {
	return c.post(ctx, engine, pathElasticsearch, req)
}

// LogClickthrough reports a click. The engine answers with an empty body.
func (c *clientImpl) LogClickthrough(ctx context.Context, engine string, req ClickRequest) error {
	body, status, err := c.http.Post(ctx, c.endpoint(engine, pathClick), req, c.headers())
	if err != nil {
		return err
	}
	if status >= 400 {
		return &ResponseError{StatusCode: status, Body: string(body)}
	}
	return nil
}

func (c *clientImpl) post(ctx context.Context, engine, path string, payload any) (Response, error) {
	body, status, err := c.http.Post(ctx, c.endpoint(engine, path), payload, c.headers())
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, &ResponseError{StatusCode: status, Body: string(body)}
	}
	return DecodeResponse(body)
}

func (c *clientImpl) endpoint(engine, path string) string {
	return c.host + apiPrefix + url.PathEscape(engine) + path
}

func (c *clientImpl) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.token,
	}
}

// DecodeResponse parses body into a Response, keeping numbers as json.Number.
func DecodeResponse(body []byte) (Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var resp map[string]any
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if resp == nil {
		return nil, ErrInvalidResponse
	}
	return Response(resp), nil
}
