package geo

import "github.com/paulmach/osm"

// Region is a first-level administrative division addressed by its ISO 3166-2 code.
type Region struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// TagRule maps a category or landscape id to osm tags.
// An empty Values means key presence only.
type TagRule struct {
	Keys   []string
	Values []string
}

// KeyOnly reports whether the rule matches on tag key presence alone.
func (r TagRule) KeyOnly() bool {
	return len(r.Values) == 0
}

// ElementKinds is the order in which query clauses are emitted per tag.
var ElementKinds = []osm.Type{osm.TypeNode, osm.TypeWay, osm.TypeRelation}
