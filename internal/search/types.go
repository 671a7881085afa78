package search

import "appsearch-srv/internal/model"

const (
	// DefaultPageLimit is the deepest page the engine will serve.
	DefaultPageLimit = 100
	// DefaultResultsLimit is the most results the engine will page through.
	DefaultResultsLimit = 10000
	// MaxMultiSearchQueries bounds a single MultiSearch call.
	MaxMultiSearchQueries = 10
)

// Identity fields requested on every search so hits can be mapped back to records.
const (
	FieldRecordBaseClass = "record_base_class"
	FieldRecordID        = "record_id"
	FieldID              = "id"

	// FieldScore is the relevance pseudo-field used for tie-break sorting.
	FieldScore = "_score"
)

// SearchInput is one search against one index.
type SearchInput struct {
	Index string
	Query *model.Query
}
