package model

import "appsearch-srv/pkg/paginator"

// Field is a decoded result value. Formatted holds the highlighted snippet.
type Field struct {
	Raw       any
	Formatted any
}

// AnalyticsData is what a click on a record must report back to the engine.
type AnalyticsData struct {
	QueryString string `json:"query_string"`
	EngineName  string `json:"engine_name"`
	DocumentID  string `json:"document_id"`
	RequestID   string `json:"request_id"`
}

// Record is one search hit keyed by PascalCase field name.
type Record struct {
	Fields    map[string]Field
	Analytics *AnalyticsData
}

// Get returns the named field.
func (r Record) Get(name string) (Field, bool) {
	f, ok := r.Fields[name]
	return f, ok
}

// FacetData is a single bucket returned for a facet. Missing values are "".
type FacetData struct {
	Value any
	From  any
	To    any
	Count any
}

// FacetResult is the decoded form of one requested facet.
type FacetResult struct {
	Property string
	Name     string
	Type     string
	Data     []FacetData
}

// Results is the decoded search response.
type Results struct {
	Query     *Query
	Records   []Record
	Paginator paginator.Paginator
	Facets    []FacetResult
	Success   bool
}

// NewResults returns an empty unsuccessful result for q.
func NewResults(q *Query) Results {
	return Results{Query: q, Records: []Record{}, Facets: []FacetResult{}}
}
