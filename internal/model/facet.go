package model

// FacetType selects how the engine buckets a facet.
type FacetType string

const (
	FacetTypeValue FacetType = "VALUE"
	FacetTypeRange FacetType = "RANGE"
)

// FacetRange is one bucket of a RANGE facet. Unset fields are left zero.
type FacetRange struct {
	From any
	To   any
	Name string
}

// Facet asks the engine to aggregate matches on Property.
type Facet struct {
	Property string
	Type     FacetType
	Name     string
	Limit    int
	Ranges   []FacetRange
}

// FacetCollection keeps facets grouped by property in insertion order.
type FacetCollection struct {
	properties []string
	facets     map[string][]Facet
}

// Add registers f under its property.
func (fc *FacetCollection) Add(f Facet) {
	if fc.facets == nil {
		fc.facets = make(map[string][]Facet)
	}
	if _, ok := fc.facets[f.Property]; !ok {
		fc.properties = append(fc.properties, f.Property)
	}
	fc.facets[f.Property] = append(fc.facets[f.Property], f)
}

// Properties returns the faceted properties in first-seen order.
func (fc FacetCollection) Properties() []string {
	return fc.properties
}

// ForProperty returns the facets registered for property.
func (fc FacetCollection) ForProperty(property string) []Facet {
	return fc.facets[property]
}

// Facets returns all facets flattened in property order.
func (fc FacetCollection) Facets() []Facet {
	var out []Facet
	for _, p := range fc.properties {
		out = append(out, fc.facets[p]...)
	}
	return out
}

func (fc FacetCollection) IsEmpty() bool {
	return len(fc.properties) == 0
}
