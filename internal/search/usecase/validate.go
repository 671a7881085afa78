package usecase

import (
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/util"
)

var requiredPageFields = []string{"current", "size", "total_pages", "total_results"}

// validateResponse checks the structure of a search response before any of
// it is trusted. Missing keys on the same level are reported together.
func validateResponse(resp appsearch.Response) error {
	if errs, ok := resp.ReportedErrors(); ok {
		return appsearch.Invalid("Elastic response contained errors: %s", errs)
	}

	var top appsearch.Violations
	top.Require("meta", !util.IsBlank(resp["meta"]))
	top.Require("results", resp["results"] != nil)
	if err := top.Err("Missing required top level fields: %s"); err != nil {
		return err
	}

	if v, _ := resp.Lookup("meta", "request_id"); util.IsBlank(v) {
		return appsearch.Invalid("Expected value for meta.request_id")
	}
	if v, _ := resp.Lookup("meta", "engine", "name"); util.IsBlank(v) {
		return appsearch.Invalid("Expected value for meta.engine.name")
	}

	pageValue, ok := resp.Lookup("meta", "page")
	if !ok {
		return appsearch.Invalid("Missing array structure for meta.page in Elastic search response")
	}
	var page map[string]any
	switch p := pageValue.(type) {
	case map[string]any:
		page = p
	case []any:
		// a list has no named keys
		page = map[string]any{}
	default:
		return appsearch.Invalid("Missing array structure for meta.page in Elastic search response")
	}

	var pagination appsearch.Violations
	for _, key := range requiredPageFields {
		_, present := page[key]
		pagination.Require(key, present)
	}
	return pagination.Err("Missing required pagination fields: %s")
}
