package usecase

import (
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/util"
)

func validateQuerySuggestionResponse(resp appsearch.Response) error {
	if errs, ok := resp.ReportedErrors(); ok {
		return appsearch.Invalid("Elastic response contained errors: %s", errs)
	}

	var top appsearch.Violations
	top.Require("meta", !util.IsBlank(resp["meta"]))
	top.Require("results", resp["results"] != nil)
	return top.Err("Missing required top level fields: %s")
}

func validateSpellingResponse(resp appsearch.Response) error {
	if errs, ok := resp.ReportedErrors(); ok {
		return appsearch.Invalid("Elastic response contained errors: %s", errs)
	}

	var top appsearch.Violations
	top.Require("suggest", !util.IsBlank(resp["suggest"]))
	return top.Err("Missing required top level fields for query suggestions: %s")
}
