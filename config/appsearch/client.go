package appsearch

import (
	"appsearch-srv/config"
	"appsearch-srv/pkg/appsearch"
	pkgHttp "appsearch-srv/pkg/http"
)

// NewClient builds the engine client with its retrying HTTP transport.
func NewClient(cfg config.AppSearchConfig) (appsearch.IClient, error) {
	httpCfg := pkgHttp.ClientConfig{
		Timeout:   cfg.Timeout,
		Retries:   cfg.Retries,
		RetryWait: cfg.RetryWait,
	}

	return appsearch.New(appsearch.Config{
		Host:  cfg.Host,
		Token: cfg.Token,
		HTTP:  httpCfg,
	}, pkgHttp.NewClient(httpCfg))
}
