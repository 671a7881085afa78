package usecase

import (
	"fmt"

	"appsearch-srv/internal/model"
	"appsearch-srv/internal/search"
	"appsearch-srv/pkg/appsearch"
)

// compileFilters compiles the filter root. A root without clauses yields nil
// so the request carries no filters. A root holding a single nested group is
// replaced by that group.
func compileFilters(root *model.Criteria) (*appsearch.Filters, error) {
	if root.IsEmpty() {
		return nil, nil
	}
	if len(root.Clauses) == 1 && root.Clauses[0].Kind() == model.ClauseKindGroup {
		return compileCriteria(root.Clauses[0].Criteria())
	}
	return compileCriteria(root)
}

// compileCriteria regroups one node by polarity. Negations always land in
// none, whatever the node's conjunction.
func compileCriteria(c *model.Criteria) (*appsearch.Filters, error) {
	filters := appsearch.NewFilters()
	if c == nil {
		return filters, nil
	}

	var clauseKind model.ClauseKind
	for i, clause := range c.Clauses {
		if i == 0 {
			clauseKind = clause.Kind()
		} else if clause.Kind() != clauseKind {
			return nil, fmt.Errorf("%w: found %s after %s", search.ErrMixedClauseTypes, clause.Kind(), clauseKind)
		}

		switch clause.Kind() {
		case model.ClauseKindPredicate:
			criterion := clause.Criterion()
			encoded, err := encodeCriterion(criterion)
			if err != nil {
				return nil, err
			}
			if criterion.Comparison.IsNegation() {
				filters.None = append(filters.None, encoded)
				continue
			}
			appendByConjunction(filters, c.Conjunction, encoded)

		case model.ClauseKindGroup:
			nested, err := compileCriteria(clause.Criteria())
			if err != nil {
				return nil, err
			}
			appendByConjunction(filters, c.Conjunction, appsearch.NestedClause(nested))

		default:
			return nil, fmt.Errorf("%w: %s", search.ErrUnknownClause, clause.Kind())
		}
	}

	return filters, nil
}

func appendByConjunction(f *appsearch.Filters, conj model.Conjunction, clause appsearch.FilterClause) {
	if conj == model.ConjunctionOr {
		f.Any = append(f.Any, clause)
		return
	}
	f.All = append(f.All, clause)
}
