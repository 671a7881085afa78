package usecase

import (
	"sort"
	"strconv"

	"appsearch-srv/internal/model"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/paginator"
	"appsearch-srv/pkg/util"
)

// decodeResults maps a validated response onto Results. Nothing is returned
// unless the whole response decodes.
func (uc *implUseCase) decodeResults(q *model.Query, resp appsearch.Response) (model.Results, error) {
	results := model.NewResults(q)

	records, err := uc.decodeRecords(q, resp)
	if err != nil {
		return model.Results{}, err
	}
	results.Records = records
	results.Paginator = uc.decodePaginator(resp, len(records))
	results.Facets = decodeFacets(q, resp)
	results.Success = true

	return results, nil
}

// decodePaginator caps the total to what the engine can actually page through:
// min(total_results, page limit * page size, results limit).
func (uc *implUseCase) decodePaginator(resp appsearch.Response, count int) paginator.Paginator {
	page, _ := resp.Object("meta", "page")

	pageSize := toInt64(page["size"])
	current := int(toInt64(page["current"]))
	if current < 1 {
		current = paginator.DefaultPage
	}

	p := paginator.Paginator{
		Total:       toInt64(page["total_results"]),
		Count:       int64(count),
		PerPage:     pageSize,
		CurrentPage: current,
	}
	return p.CapTotal(int64(uc.cfg.PageLimit)*pageSize, int64(uc.cfg.ResultsLimit))
}

func (uc *implUseCase) decodeRecords(q *model.Query, resp appsearch.Response) ([]model.Record, error) {
	rawResults, ok := resp["results"].([]any)
	if !ok {
		return nil, appsearch.Invalid("Elastic Response contained no results array")
	}

	requestID, _ := resp.Lookup("meta", "request_id")
	engineName, _ := resp.Lookup("meta", "engine", "name")
	var missing appsearch.Violations
	missing.Require("meta.request_id", !util.IsBlank(requestID))
	missing.Require("meta.engine.name", !util.IsBlank(engineName))
	if err := missing.Err("Expected values for: %s"); err != nil {
		return nil, err
	}

	queryString := ""
	if q != nil {
		queryString = q.QueryString
	}

	records := make([]model.Record, 0, len(rawResults))
	for _, item := range rawResults {
		result, _ := item.(map[string]any)

		record := model.Record{Fields: make(map[string]model.Field, len(result))}
		for name, value := range result {
			var field model.Field
			if sub, ok := value.(map[string]any); ok {
				field = model.Field{Raw: sub["raw"], Formatted: sub["snippet"]}
			}
			record.Fields[util.SnakeToPascal(name)] = field
		}

		if uc.cfg.AnalyticsEnabled {
			var documentID any
			if id, ok := result["id"].(map[string]any); ok {
				documentID = id["raw"]
			}
			record.Analytics = &model.AnalyticsData{
				QueryString: queryString,
				EngineName:  toString(engineName),
				DocumentID:  toString(documentID),
				RequestID:   toString(requestID),
			}
		}

		records = append(records, record)
	}
	return records, nil
}

// decodeFacets returns facet results in the order the query asked for them,
// followed by any other properties the engine returned, sorted by name.
func decodeFacets(q *model.Query, resp appsearch.Response) []model.FacetResult {
	out := []model.FacetResult{}

	facets, ok := resp["facets"].(map[string]any)
	if !ok {
		return out
	}

	for _, property := range facetOrder(q, facets) {
		entries, ok := facets[property].([]any)
		if !ok {
			continue
		}
		for i, entry := range entries {
			facet, ok := entry.(map[string]any)
			if !ok {
				continue
			}

			name := toString(facet["name"])
			if name == "" {
				name = strconv.Itoa(i)
			}
			result := model.FacetResult{
				Property: property,
				Name:     name,
				Type:     toString(facet["type"]),
				Data:     []model.FacetData{},
			}

			data, _ := facet["data"].([]any)
			for _, d := range data {
				bucket, ok := d.(map[string]any)
				if !ok {
					continue
				}
				result.Data = append(result.Data, model.FacetData{
					Value: orEmpty(bucket, "value"),
					From:  orEmpty(bucket, "from"),
					To:    orEmpty(bucket, "to"),
					Count: orEmpty(bucket, "count"),
				})
			}

			out = append(out, result)
		}
	}
	return out
}

func facetOrder(q *model.Query, facets map[string]any) []string {
	order := make([]string, 0, len(facets))
	seen := make(map[string]bool, len(facets))
	if q != nil {
		for _, property := range q.Facets.Properties() {
			if _, ok := facets[property]; ok && !seen[property] {
				order = append(order, property)
				seen[property] = true
			}
		}
	}

	var rest []string
	for property := range facets {
		if !seen[property] {
			rest = append(rest, property)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
