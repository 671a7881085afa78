package usecase

import (
	"fmt"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/search"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/util"
)

// encodeCriterion turns one comparison into a {target: value} clause.
func encodeCriterion(c model.Criterion) (appsearch.FilterClause, error) {
	switch c.Comparison {
	case model.ComparisonGreaterThan,
		model.ComparisonLessThan,
		model.ComparisonIsNull,
		model.ComparisonIsNotNull:
		return appsearch.FilterClause{}, fmt.Errorf("%w: %s", search.ErrUnsupportedComparison, c.Comparison)

	case model.ComparisonRange:
		r, err := encodeRange(c.Value)
		if err != nil {
			return appsearch.FilterClause{}, fmt.Errorf("%w (field %q)", err, c.Target)
		}
		return appsearch.FieldClause(c.Target, r), nil

	// Inclusive bounds are half open ranges on the engine side
	case model.ComparisonGreaterEqual:
		return appsearch.FieldClause(c.Target, appsearch.RangeValue{From: util.NormalizeDate(c.Value)}), nil
	case model.ComparisonLessEqual:
		return appsearch.FieldClause(c.Target, appsearch.RangeValue{To: util.NormalizeDate(c.Value)}), nil

	default:
		return appsearch.FieldClause(c.Target, c.Value), nil
	}
}

// encodeRange accepts model.Range or a {"from", "to"} map. Blank bounds are
// dropped and at least one bound must remain.
func encodeRange(value any) (appsearch.RangeValue, error) {
	var from, to any
	switch v := value.(type) {
	case model.Range:
		from, to = v.From, v.To
	case *model.Range:
		if v != nil {
			from, to = v.From, v.To
		}
	case map[string]any:
		from, to = v["from"], v["to"]
	default:
		return appsearch.RangeValue{}, search.ErrInvalidRangeValue
	}

	var r appsearch.RangeValue
	if !util.IsBlank(from) {
		r.From = util.NormalizeDate(from)
	}
	if !util.IsBlank(to) {
		r.To = util.NormalizeDate(to)
	}
	if r.From == nil && r.To == nil {
		return appsearch.RangeValue{}, search.ErrInvalidRangeValue
	}
	return r, nil
}
