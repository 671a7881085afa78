package http

import (
	"strconv"
	"strings"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/search"
	pkgErrors "appsearch-srv/pkg/errors"
	"appsearch-srv/pkg/paginator"
	"appsearch-srv/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

type searchReq struct {
	Query        string           `json:"query"`
	Filter       *criteriaReq     `json:"filter,omitempty"`
	Facets       []facetReq       `json:"facets,omitempty"`
	Sort         []sortReq        `json:"sort,omitempty"`
	Page         int              `json:"page,omitempty"`
	PageSize     int64            `json:"page_size,omitempty"`
	Limit        int              `json:"limit,omitempty"`
	Offset       int              `json:"offset,omitempty"`
	ResultFields []resultFieldReq `json:"result_fields,omitempty"`
	SearchFields []searchFieldReq `json:"search_fields,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
}

// criteriaReq is a filter tree node. Its clauses must all be criteria or all be groups.
type criteriaReq struct {
	Conjunction string      `json:"conjunction"`
	Clauses     []clauseReq `json:"clauses"`
}

// clauseReq holds either a comparison (target, comparison, value) or a nested group.
type clauseReq struct {
	Target     string       `json:"target,omitempty"`
	Comparison string       `json:"comparison,omitempty"`
	Value      any          `json:"value,omitempty"`
	Group      *criteriaReq `json:"group,omitempty"`
}

type facetReq struct {
	Property string          `json:"property"`
	Type     string          `json:"type"`
	Name     string          `json:"name,omitempty"`
	Limit    int             `json:"limit,omitempty"`
	Ranges   []facetRangeReq `json:"ranges,omitempty"`
}

type facetRangeReq struct {
	From any    `json:"from,omitempty"`
	To   any    `json:"to,omitempty"`
	Name string `json:"name,omitempty"`
}

type sortReq struct {
	Field     string `json:"field"`
	Direction string `json:"direction,omitempty"`
}

type resultFieldReq struct {
	Name      string `json:"name"`
	Length    int    `json:"length,omitempty"`
	Formatted bool   `json:"formatted,omitempty"`
}

type searchFieldReq struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight,omitempty"`
}

type multiSearchReq struct {
	Searches []multiSearchItemReq `json:"searches"`
}

type multiSearchItemReq struct {
	Index string `json:"index"`
	searchReq
}

func (r searchReq) validate() error {
	collector := pkgErrors.NewValidationErrorCollector()
	for i, f := range r.Facets {
		if strings.TrimSpace(f.Property) == "" {
			collector.Add("facets", "facet "+strconv.Itoa(i)+" has no property")
		}
	}
	for i, s := range r.Sort {
		if strings.TrimSpace(s.Field) == "" {
			collector.Add("sort", "sort "+strconv.Itoa(i)+" has no field")
		}
	}
	for i, f := range r.SearchFields {
		if strings.TrimSpace(f.Name) == "" {
			collector.Add("search_fields", "search field "+strconv.Itoa(i)+" has no name")
		}
	}
	if r.Limit < 0 || r.Offset < 0 || r.Page < 0 || r.PageSize < 0 {
		collector.Add("pagination", "page, page_size, limit and offset must not be negative")
	}
	if collector.HasError() {
		return collector
	}
	return nil
}

func (r searchReq) toQuery() *model.Query {
	q := model.NewQuery(r.Query)
	if r.Filter != nil {
		q.Filter = r.Filter.toCriteria()
	}

	for _, f := range r.Facets {
		facet := model.Facet{
			Property: f.Property,
			Type:     model.FacetType(strings.ToUpper(f.Type)),
			Name:     f.Name,
			Limit:    f.Limit,
		}
		for _, b := range f.Ranges {
			facet.Ranges = append(facet.Ranges, model.FacetRange{From: b.From, To: b.To, Name: b.Name})
		}
		q.AddFacet(facet)
	}

	for _, s := range r.Sort {
		q.AddSort(s.Field, s.Direction)
	}

	switch {
	case r.Limit > 0:
		q.SetPagination(r.Limit, r.Offset)
	case r.PageSize > 0 || r.Page > 0:
		pq := paginator.PaginateQuery{Page: r.Page, Limit: r.PageSize}
		pq.Adjust()
		q.SetPage(int(pq.Limit), pq.Page)
	}

	for _, f := range r.ResultFields {
		q.AddResultField(f.Name, f.Length, f.Formatted)
	}
	for _, f := range r.SearchFields {
		q.AddSearchField(f.Name, f.Weight)
	}
	if len(r.Tags) > 0 {
		q.AddTag(r.Tags...)
	}
	return q
}

func (r criteriaReq) toCriteria() *model.Criteria {
	c := model.NewAllCriteria()
	if strings.EqualFold(r.Conjunction, string(model.ConjunctionOr)) || strings.EqualFold(r.Conjunction, "ANY") {
		c.Conjunction = model.ConjunctionOr
	}
	for _, clause := range r.Clauses {
		if clause.Group != nil {
			c.Nest(clause.Group.toCriteria())
			continue
		}
		c.Where(clause.Target, clause.Value, model.Comparison(strings.ToUpper(clause.Comparison)))
	}
	return c
}

func (r multiSearchReq) toInputs() ([]search.SearchInput, error) {
	inputs := make([]search.SearchInput, 0, len(r.Searches))
	for _, s := range r.Searches {
		if err := s.validate(); err != nil {
			return nil, err
		}
		inputs = append(inputs, search.SearchInput{Index: s.Index, Query: s.toQuery()})
	}
	return inputs, nil
}

// =====================================================
// Response DTOs
// =====================================================

type searchResp struct {
	Success   bool                        `json:"success"`
	Records   []recordResp                `json:"records"`
	Facets    []facetResp                 `json:"facets"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type recordResp struct {
	Fields    map[string]fieldResp `json:"fields"`
	Analytics *model.AnalyticsData `json:"analytics,omitempty"`
}

type fieldResp struct {
	Raw       any `json:"raw"`
	Formatted any `json:"formatted"`
}

type facetResp struct {
	Property string          `json:"property"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Data     []facetDataResp `json:"data"`
}

type facetDataResp struct {
	Value any `json:"value"`
	From  any `json:"from"`
	To    any `json:"to"`
	Count any `json:"count"`
}

type multiSearchResp struct {
	Results []searchResp `json:"results"`
}

type compileResp struct {
	Request any `json:"request"`
}

type invalidateCacheResp struct {
	Index   string `json:"index"`
	Deleted int    `json:"deleted"`
}

func (h *handler) newSearchResp(results model.Results) searchResp {
	resp := searchResp{
		Success:   results.Success,
		Records:   make([]recordResp, 0, len(results.Records)),
		Facets:    make([]facetResp, 0, len(results.Facets)),
		Paginator: results.Paginator.ToResponse(),
	}

	for _, r := range results.Records {
		record := recordResp{
			Fields:    make(map[string]fieldResp, len(r.Fields)),
			Analytics: r.Analytics,
		}
		for name, f := range r.Fields {
			record.Fields[name] = fieldResp{Raw: f.Raw, Formatted: f.Formatted}
		}
		resp.Records = append(resp.Records, record)
	}

	for _, f := range results.Facets {
		facet := facetResp{Property: f.Property, Name: f.Name, Type: f.Type, Data: make([]facetDataResp, 0, len(f.Data))}
		for _, d := range f.Data {
			facet.Data = append(facet.Data, facetDataResp{Value: d.Value, From: d.From, To: d.To, Count: d.Count})
		}
		resp.Facets = append(resp.Facets, facet)
	}

	return resp
}

func (h *handler) newMultiSearchResp(results []model.Results) multiSearchResp {
	return multiSearchResp{Results: util.MapSlice(results, h.newSearchResp)}
}
