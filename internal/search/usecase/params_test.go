package usecase

import (
	"encoding/json"
	"testing"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/search"
	"appsearch-srv/pkg/appsearch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileQueryMinimal(t *testing.T) {
	req, err := compileQuery(model.NewQuery(""))
	require.NoError(t, err)

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query": "",
		"result_fields": {
			"record_base_class": {"raw": {}},
			"record_id": {"raw": {}},
			"id": {"raw": {}}
		}
	}`, string(b))
}

func TestCompileQueryFull(t *testing.T) {
	q := model.NewQuery("annual report").
		AddFilter("status", "published", model.ComparisonEqual).
		AddFilter("year", 2020, model.ComparisonGreaterEqual).
		AddFacet(model.Facet{Property: "category", Type: model.FacetTypeValue, Limit: 10}).
		AddSort("published_at", "DESC").
		AddResultField("title", 0, false).
		AddResultField("content", 200, true).
		AddSearchField("title", 2).
		AddSearchField("content", 0).
		AddTag("web").
		SetPagination(10, 20)

	req, err := compileQuery(q)
	require.NoError(t, err)

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query": "annual report",
		"filters": {"all": [{"status":"published"},{"year":{"from":2020}}], "any": [], "none": []},
		"facets": {"category": [{"type":"value","size":10}]},
		"sort": [{"published_at":"desc"},{"_score":"desc"}],
		"result_fields": {
			"record_base_class": {"raw": {}},
			"record_id": {"raw": {}},
			"id": {"raw": {}},
			"title": {"raw": {}},
			"content": {"snippet": {"size": 200}}
		},
		"search_fields": {"title": {"weight": 2}, "content": {}},
		"page": {"size": 10, "current": 3},
		"analytics": {"tags": ["web"]}
	}`, string(b))
}

func TestCompileQueryErrors(t *testing.T) {
	_, err := compileQuery(nil)
	assert.ErrorIs(t, err, search.ErrQueryRequired)

	q := model.NewQuery("x").AddFilter("n", 1, model.ComparisonLessThan)
	_, err = compileQuery(q)
	assert.ErrorIs(t, err, search.ErrUnsupportedComparison)
}

func TestBuildSort(t *testing.T) {
	assert.Nil(t, buildSort(nil))

	assert.Equal(t,
		[]map[string]string{{"title": "asc"}, {"_score": "desc"}},
		buildSort([]model.SortField{{Field: "title"}}))

	assert.Equal(t,
		[]map[string]string{{"_score": "asc"}, {"title": "desc"}},
		buildSort([]model.SortField{{Field: "_score", Direction: "ASC"}, {Field: "title", Direction: "Desc"}}))
}

func TestBuildResultFieldsMergesRawAndSnippet(t *testing.T) {
	fields := buildResultFields([]model.ResultField{
		{Name: "title"},
		{Name: "title", Formatted: true, Length: 50},
		{Name: ""},
	})

	require.Contains(t, fields, "title")
	assert.Equal(t, &appsearch.FieldSize{}, fields["title"].Raw)
	assert.Equal(t, &appsearch.FieldSize{Size: 50}, fields["title"].Snippet)
	assert.Len(t, fields, 4)
}

func TestBuildPage(t *testing.T) {
	tests := []struct {
		name string
		in   model.Pagination
		want *appsearch.PageRequest
	}{
		{"offset 20 limit 10", model.Pagination{Limit: 10, Offset: 20}, &appsearch.PageRequest{Size: 10, Current: 3}},
		{"offset 0 limit 10", model.Pagination{Limit: 10}, &appsearch.PageRequest{Size: 10, Current: 1}},
		{"offset inside a page", model.Pagination{Limit: 10, Offset: 25}, &appsearch.PageRequest{Size: 10, Current: 3}},
		{"negative offset", model.Pagination{Limit: 10, Offset: -5}, &appsearch.PageRequest{Size: 10, Current: 1}},
		{"limit wins over page", model.Pagination{Limit: 5, Offset: 5, PageSize: 50, PageNum: 9}, &appsearch.PageRequest{Size: 5, Current: 2}},
		{"page size and number", model.Pagination{PageSize: 25, PageNum: 4}, &appsearch.PageRequest{Size: 25, Current: 4}},
		{"page number defaults to 1", model.Pagination{PageSize: 25}, &appsearch.PageRequest{Size: 25, Current: 1}},
		{"unset", model.Pagination{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildPage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := buildPage(model.Pagination{Limit: -1})
	assert.ErrorIs(t, err, search.ErrInvalidPageLimit)
}
