package appsearch

import (
	"context"
	"fmt"
	"strings"

	pkgHttp "appsearch-srv/pkg/http"
)

// IClient talks to the App Search engines API.
// Implementations are safe for concurrent use.
type IClient interface {
	Search(ctx context.Context, engine string, req SearchRequest) (Response, error)
	QuerySuggestion(ctx context.Context, engine string, req QuerySuggestionRequest) (Response, error)
	ElasticsearchSearch(ctx context.Context, engine string, req ElasticsearchRequest) (Response, error)
	LogClickthrough(ctx context.Context, engine string, req ClickRequest) error
}

// New validates cfg and returns a client sending requests through httpClient.
func New(cfg Config, httpClient pkgHttp.IClient) (IClient, error) {
	var missing []string
	if cfg.Host == "" {
		missing = append(missing, SettingHost)
	}
	if cfg.Token == "" {
		missing = append(missing, SettingToken)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSettings, strings.Join(missing, ", "))
	}
	if httpClient == nil {
		return nil, ErrHTTPClientMissing
	}

	return &clientImpl{
		http:  httpClient,
		host:  strings.TrimRight(cfg.Host, "/"),
		token: cfg.Token,
	}, nil
}
