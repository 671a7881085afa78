package search

import (
	"context"

	"appsearch-srv/internal/model"
	"appsearch-srv/pkg/appsearch"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Search compiles input.Query, sends it to the engine and decodes the answer.
	// Compilation errors are returned. Engine and transport failures are logged
	// and reported through Results.Success instead.
	Search(ctx context.Context, input SearchInput) (model.Results, error)
	// MultiSearch runs several searches concurrently and returns results in input order.
	MultiSearch(ctx context.Context, inputs []SearchInput) ([]model.Results, error)
	// Compile builds the wire request for q without sending it.
	Compile(q *model.Query) (appsearch.SearchRequest, error)
	// InvalidateCache drops every cached response of index and returns how many were removed.
	InvalidateCache(ctx context.Context, index string) (int, error)
}
