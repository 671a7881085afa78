package model

// SortDirection values accepted by the engine, case-insensitive.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// SortField orders results by one field.
type SortField struct {
	Field     string
	Direction string
}

// Pagination holds either a page size and number, or an offset and limit.
// Offset and limit win when Limit is set.
type Pagination struct {
	PageSize int
	PageNum  int
	Limit    int
	Offset   int
}

// IsSet reports whether any paging was requested.
func (p Pagination) IsSet() bool {
	return p.Limit > 0 || p.PageSize > 0
}

// ResultField projects one field into the response. Formatted requests the
// highlighted snippet instead of the raw value. Length truncates when > 0.
type ResultField struct {
	Name      string
	Length    int
	Formatted bool
}

// SearchField restricts full text matching to Name, optionally weighted.
type SearchField struct {
	Name   string
	Weight float64
}

// Query is the application level search request.
type Query struct {
	QueryString  string
	Filter       *Criteria
	Facets       FacetCollection
	Sort         []SortField
	Pagination   Pagination
	ResultFields []ResultField
	SearchFields []SearchField
	Tags         []string
}

// NewQuery returns a Query with an empty AND filter root.
func NewQuery(queryString string) *Query {
	return &Query{
		QueryString: queryString,
		Filter:      NewAllCriteria(),
	}
}

// FilterRoot returns the filter root, never nil.
func (q *Query) FilterRoot() *Criteria {
	if q.Filter == nil {
		q.Filter = NewAllCriteria()
	}
	return q.Filter
}

// AddFilter appends a criterion to the filter root.
func (q *Query) AddFilter(target string, value any, comparison Comparison) *Query {
	q.FilterRoot().Where(target, value, comparison)
	return q
}

func (q *Query) AddFacet(f Facet) *Query {
	q.Facets.Add(f)
	return q
}

func (q *Query) AddSort(field, direction string) *Query {
	q.Sort = append(q.Sort, SortField{Field: field, Direction: direction})
	return q
}

// SetPagination pages by offset and limit.
func (q *Query) SetPagination(limit, offset int) *Query {
	q.Pagination.Limit = limit
	q.Pagination.Offset = offset
	return q
}

// SetPage pages by page size and 1-based page number.
func (q *Query) SetPage(size, num int) *Query {
	q.Pagination.PageSize = size
	q.Pagination.PageNum = num
	return q
}

func (q *Query) AddResultField(name string, length int, formatted bool) *Query {
	q.ResultFields = append(q.ResultFields, ResultField{Name: name, Length: length, Formatted: formatted})
	return q
}

func (q *Query) AddSearchField(name string, weight float64) *Query {
	q.SearchFields = append(q.SearchFields, SearchField{Name: name, Weight: weight})
	return q
}

func (q *Query) AddTag(tags ...string) *Query {
	q.Tags = append(q.Tags, tags...)
	return q
}
