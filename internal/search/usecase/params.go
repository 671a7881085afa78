package usecase

import (
	"fmt"
	"strings"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/search"
	"appsearch-srv/pkg/appsearch"
)

const sortDirectionDesc = "desc"

// Compile - Build the wire request for q without dispatching it
func (uc *implUseCase) Compile(q *model.Query) (appsearch.SearchRequest, error) {
	return compileQuery(q)
}

// compileQuery assembles every part of the request. Any compilation error
// aborts the whole request.
func compileQuery(q *model.Query) (appsearch.SearchRequest, error) {
	if q == nil {
		return appsearch.SearchRequest{}, search.ErrQueryRequired
	}

	req := appsearch.SearchRequest{Query: q.QueryString}

	filters, err := compileFilters(q.Filter)
	if err != nil {
		return appsearch.SearchRequest{}, err
	}
	req.Filters = filters

	facets, err := compileFacets(q.Facets)
	if err != nil {
		return appsearch.SearchRequest{}, err
	}
	req.Facets = facets

	page, err := buildPage(q.Pagination)
	if err != nil {
		return appsearch.SearchRequest{}, err
	}
	req.Page = page

	req.Sort = buildSort(q.Sort)
	req.ResultFields = buildResultFields(q.ResultFields)
	req.SearchFields = buildSearchFields(q.SearchFields)

	if len(q.Tags) > 0 {
		req.Analytics = &appsearch.AnalyticsRequest{Tags: q.Tags}
	}

	return req, nil
}

// buildSort lower-cases directions and appends a relevance tie-break unless
// the caller already sorts on it.
func buildSort(fields []model.SortField) []map[string]string {
	if len(fields) == 0 {
		return nil
	}

	out := make([]map[string]string, 0, len(fields)+1)
	hasScore := false
	for _, f := range fields {
		direction := strings.ToLower(strings.TrimSpace(f.Direction))
		if direction == "" {
			direction = strings.ToLower(model.SortAsc)
		}
		if f.Field == search.FieldScore {
			hasScore = true
		}
		out = append(out, map[string]string{f.Field: direction})
	}
	if !hasScore {
		out = append(out, map[string]string{search.FieldScore: sortDirectionDesc})
	}
	return out
}

// buildResultFields always requests the identity fields in raw form so hits
// can be mapped back to records.
func buildResultFields(fields []model.ResultField) map[string]appsearch.ResultFieldRequest {
	out := map[string]appsearch.ResultFieldRequest{
		search.FieldRecordBaseClass: {Raw: &appsearch.FieldSize{}},
		search.FieldRecordID:        {Raw: &appsearch.FieldSize{}},
		search.FieldID:              {Raw: &appsearch.FieldSize{}},
	}

	for _, f := range fields {
		if f.Name == "" {
			continue
		}
		size := &appsearch.FieldSize{}
		if f.Length > 0 {
			size.Size = f.Length
		}
		entry := out[f.Name]
		if f.Formatted {
			entry.Snippet = size
		} else {
			entry.Raw = size
		}
		out[f.Name] = entry
	}
	return out
}

func buildSearchFields(fields []model.SearchField) map[string]appsearch.SearchFieldRequest {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]appsearch.SearchFieldRequest, len(fields))
	for _, f := range fields {
		var req appsearch.SearchFieldRequest
		if f.Weight > 0 {
			req.Weight = f.Weight
		}
		out[f.Name] = req
	}
	return out
}

// buildPage converts offset/limit into a 1-based page number. Offset 20 with
// limit 10 is page 3.
func buildPage(p model.Pagination) (*appsearch.PageRequest, error) {
	if p.Limit < 0 || p.PageSize < 0 {
		return nil, fmt.Errorf("%w: limit=%d page_size=%d", search.ErrInvalidPageLimit, p.Limit, p.PageSize)
	}

	switch {
	case p.Limit > 0:
		offset := p.Offset
		if offset < 0 {
			offset = 0
		}
		return &appsearch.PageRequest{Size: p.Limit, Current: offset/p.Limit + 1}, nil
	case p.PageSize > 0:
		current := p.PageNum
		if current < 1 {
			current = 1
		}
		return &appsearch.PageRequest{Size: p.PageSize, Current: current}, nil
	default:
		return nil, nil
	}
}
