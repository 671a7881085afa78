package appsearch

import (
	"encoding/json"

	pkgHttp "appsearch-srv/pkg/http"
)

// Config holds the engine endpoint and credentials.
type Config struct {
	Host  string
	Token string
	HTTP  pkgHttp.ClientConfig
}

type clientImpl struct {
	http  pkgHttp.IClient
	host  string
	token string
}

// Response is a decoded, still untrusted, JSON object returned by the engine.
// Numbers are kept as json.Number.
type Response map[string]any

// SearchRequest is the body of POST /engines/{engine}/search.
type SearchRequest struct {
	Query        string                        `json:"query"`
	Filters      *Filters                      `json:"filters,omitempty"`
	Facets       map[string][]FacetRequest     `json:"facets,omitempty"`
	Sort         []map[string]string           `json:"sort,omitempty"`
	ResultFields map[string]ResultFieldRequest `json:"result_fields,omitempty"`
	SearchFields map[string]SearchFieldRequest `json:"search_fields,omitempty"`
	Page         *PageRequest                  `json:"page,omitempty"`
	Analytics    *AnalyticsRequest             `json:"analytics,omitempty"`
}

// Filters is the all/any/none filter structure. Empty groups serialize as [].
type Filters struct {
	All  []FilterClause `json:"all"`
	Any  []FilterClause `json:"any"`
	None []FilterClause `json:"none"`
}

// NewFilters returns Filters with all three groups initialised.
func NewFilters() *Filters {
	return &Filters{
		All:  []FilterClause{},
		Any:  []FilterClause{},
		None: []FilterClause{},
	}
}

// IsEmpty reports whether no group holds a clause.
func (f *Filters) IsEmpty() bool {
	return f == nil || len(f.All)+len(f.Any)+len(f.None) == 0
}

// FilterClause is one entry of a filter group: a {field: value} pair or a nested Filters.
type FilterClause struct {
	field  string
	value  any
	nested *Filters
}

// FieldClause builds a {field: value} clause.
func FieldClause(field string, value any) FilterClause {
	return FilterClause{field: field, value: value}
}

// NestedClause wraps a nested filter structure.
func NestedClause(f *Filters) FilterClause {
	return FilterClause{nested: f}
}

func (c FilterClause) Field() string { return c.field }

func (c FilterClause) Value() any { return c.value }

func (c FilterClause) Nested() *Filters { return c.nested }

func (c FilterClause) IsNested() bool { return c.nested != nil }

func (c FilterClause) MarshalJSON() ([]byte, error) {
	if c.nested != nil {
		return json.Marshal(c.nested)
	}
	return json.Marshal(map[string]any{c.field: c.value})
}

// RangeValue is the {from, to} body of a range filter or bucket.
type RangeValue struct {
	From any `json:"from,omitempty"`
	To   any `json:"to,omitempty"`
}

// FacetRequest is one facet on a field.
type FacetRequest struct {
	Type   string              `json:"type"`
	Name   string              `json:"name,omitempty"`
	Size   int                 `json:"size,omitempty"`
	Ranges []FacetRangeRequest `json:"ranges,omitempty"`
}

// FacetRangeRequest is one bucket of a range facet.
type FacetRangeRequest struct {
	From any    `json:"from,omitempty"`
	To   any    `json:"to,omitempty"`
	Name string `json:"name,omitempty"`
}

// FieldSize requests a field, optionally truncated to Size characters.
type FieldSize struct {
	Size int `json:"size,omitempty"`
}

// ResultFieldRequest asks for the raw value, the snippet, or both.
type ResultFieldRequest struct {
	Raw     *FieldSize `json:"raw,omitempty"`
	Snippet *FieldSize `json:"snippet,omitempty"`
}

type SearchFieldRequest struct {
	Weight float64 `json:"weight,omitempty"`
}

type PageRequest struct {
	Size    int `json:"size"`
	Current int `json:"current"`
}

type AnalyticsRequest struct {
	Tags []string `json:"tags"`
}

// QuerySuggestionRequest is the body of POST /engines/{engine}/query_suggestion.
type QuerySuggestionRequest struct {
	Query string           `json:"query"`
	Size  int              `json:"size,omitempty"`
	Types *SuggestionTypes `json:"types,omitempty"`
}

type SuggestionTypes struct {
	Documents SuggestionDocuments `json:"documents"`
}

type SuggestionDocuments struct {
	Fields []string `json:"fields"`
}

// ElasticsearchRequest is the passthrough body sent to /elasticsearch/_search.
type ElasticsearchRequest struct {
	Suggest map[string]any `json:"suggest,omitempty"`
}

// TermSuggester is a term suggester on one field.
type TermSuggester struct {
	Term TermSuggesterOptions `json:"term"`
}

type TermSuggesterOptions struct {
	Field string `json:"field"`
	Size  int    `json:"size,omitempty"`
}

// ClickRequest is the body of POST /engines/{engine}/click.
type ClickRequest struct {
	Query      string   `json:"query"`
	DocumentID string   `json:"document_id"`
	RequestID  string   `json:"request_id,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}
