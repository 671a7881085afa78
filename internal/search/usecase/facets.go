package usecase

import (
	"fmt"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/search"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/util"
)

const (
	facetTypeValue = "value"
	facetTypeRange = "range"
)

// compileFacets groups facet fragments by property, keeping insertion order
// inside each property.
func compileFacets(fc model.FacetCollection) (map[string][]appsearch.FacetRequest, error) {
	if fc.IsEmpty() {
		return nil, nil
	}

	out := make(map[string][]appsearch.FacetRequest, len(fc.Properties()))
	for _, property := range fc.Properties() {
		for _, f := range fc.ForProperty(property) {
			req, err := compileFacet(f)
			if err != nil {
				return nil, err
			}
			out[property] = append(out[property], req)
		}
	}
	return out, nil
}

func compileFacet(f model.Facet) (appsearch.FacetRequest, error) {
	switch f.Type {
	case model.FacetTypeValue:
		req := appsearch.FacetRequest{Type: facetTypeValue, Name: f.Name}
		if f.Limit > 0 {
			req.Size = f.Limit
		}
		return req, nil
	case model.FacetTypeRange:
		return appsearch.FacetRequest{
			Type:   facetTypeRange,
			Name:   f.Name,
			Ranges: compileFacetRanges(f.Ranges),
		}, nil
	default:
		return appsearch.FacetRequest{}, fmt.Errorf("%w: %q on %s", search.ErrUnknownFacetType, f.Type, f.Property)
	}
}

// compileFacetRanges keeps only populated bucket keys and drops empty buckets.
// Returns nil when nothing survives so the ranges key is omitted.
func compileFacetRanges(ranges []model.FacetRange) []appsearch.FacetRangeRequest {
	var out []appsearch.FacetRangeRequest
	for _, r := range ranges {
		var bucket appsearch.FacetRangeRequest
		populated := false
		if !util.IsBlank(r.From) {
			bucket.From = r.From
			populated = true
		}
		if !util.IsBlank(r.To) {
			bucket.To = r.To
			populated = true
		}
		if !util.IsBlank(r.Name) {
			bucket.Name = r.Name
			populated = true
		}
		if populated {
			out = append(out, bucket)
		}
	}
	return out
}
