package model

// Comparison is the operator of a single Criterion.
type Comparison string

const (
	ComparisonEqual        Comparison = "EQUAL"
	ComparisonNotEqual     Comparison = "NOT_EQUAL"
	ComparisonGreaterEqual Comparison = "GREATER_EQUAL"
	ComparisonLessEqual    Comparison = "LESS_EQUAL"
	ComparisonGreaterThan  Comparison = "GREATER_THAN"
	ComparisonLessThan     Comparison = "LESS_THAN"
	ComparisonIsNull       Comparison = "IS_NULL"
	ComparisonIsNotNull    Comparison = "IS_NOT_NULL"
	ComparisonIn           Comparison = "IN"
	ComparisonNotIn        Comparison = "NOT_IN"
	ComparisonRange        Comparison = "RANGE"
)

// IsNegation reports whether c excludes matches instead of selecting them.
func (c Comparison) IsNegation() bool {
	return c == ComparisonNotEqual || c == ComparisonNotIn
}

// Conjunction joins the clauses of a Criteria node.
type Conjunction string

const (
	ConjunctionAnd Conjunction = "AND"
	ConjunctionOr  Conjunction = "OR"
)

// Range is the value of a RANGE criterion. Either bound may be nil.
type Range struct {
	From any `json:"from,omitempty"`
	To   any `json:"to,omitempty"`
}

// Criterion is a single comparison against one field.
type Criterion struct {
	Target     string
	Comparison Comparison
	Value      any
}

// NewCriterion builds a Criterion.
func NewCriterion(target string, value any, comparison Comparison) Criterion {
	return Criterion{Target: target, Comparison: comparison, Value: value}
}

// ClauseKind discriminates the two shapes a Clause can take.
type ClauseKind int

const (
	ClauseKindPredicate ClauseKind = iota + 1
	ClauseKindGroup
)

func (k ClauseKind) String() string {
	switch k {
	case ClauseKindPredicate:
		return "criterion"
	case ClauseKindGroup:
		return "criteria"
	default:
		return "unknown"
	}
}

// Clause is either a leaf Criterion or a nested Criteria group.
type Clause struct {
	kind      ClauseKind
	criterion Criterion
	criteria  *Criteria
}

// Predicate wraps a Criterion as a Clause.
func Predicate(c Criterion) Clause {
	return Clause{kind: ClauseKindPredicate, criterion: c}
}

// Group wraps a nested Criteria as a Clause.
func Group(c *Criteria) Clause {
	return Clause{kind: ClauseKindGroup, criteria: c}
}

func (c Clause) Kind() ClauseKind { return c.kind }

// Criterion returns the wrapped criterion. Only meaningful for predicate clauses.
func (c Clause) Criterion() Criterion { return c.criterion }

// Criteria returns the nested group. Nil unless Kind is ClauseKindGroup.
func (c Clause) Criteria() *Criteria { return c.criteria }

// Criteria is a node of the boolean filter tree.
type Criteria struct {
	Conjunction Conjunction
	Clauses     []Clause
}

// NewAllCriteria starts an AND node.
func NewAllCriteria(clauses ...Clause) *Criteria {
	return &Criteria{Conjunction: ConjunctionAnd, Clauses: clauses}
}

// NewAnyCriteria starts an OR node.
func NewAnyCriteria(clauses ...Clause) *Criteria {
	return &Criteria{Conjunction: ConjunctionOr, Clauses: clauses}
}

// Where appends a criterion clause and returns c for chaining.
func (c *Criteria) Where(target string, value any, comparison Comparison) *Criteria {
	c.Clauses = append(c.Clauses, Predicate(NewCriterion(target, value, comparison)))
	return c
}

// Nest appends a nested group and returns c for chaining.
func (c *Criteria) Nest(group *Criteria) *Criteria {
	c.Clauses = append(c.Clauses, Group(group))
	return c
}

// IsEmpty reports whether the node has no clauses.
func (c *Criteria) IsEmpty() bool {
	return c == nil || len(c.Clauses) == 0
}
