package overpass

import (
	"fmt"
	"strings"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"
)

const (
	DEFAULT_TIMEOUT      = 60
	DEFAULT_MAX_ELEMENTS = 1000
	// named set the region area is bound to
	AREA_SET = "a"
)

type QueryOptions struct {
	Timeout     int // server-side processing timeout hint, seconds
	MaxElements int // cap passed to "out center"
}

func DefaultQueryOptions() QueryOptions {
	return QueryOptions{Timeout: DEFAULT_TIMEOUT, MaxElements: DEFAULT_MAX_ELEMENTS}
}

// QueryBuilder renders overpass QL for a region code and a filter selection.
type QueryBuilder struct {
	opts       QueryOptions
	categories map[string]geo.TagRule
	landscapes map[string]geo.TagRule
}

func NewQueryBuilder(opts QueryOptions) *QueryBuilder {
	if opts.Timeout <= 0 {
		opts.Timeout = DEFAULT_TIMEOUT
	}
	if opts.MaxElements <= 0 {
		opts.MaxElements = DEFAULT_MAX_ELEMENTS
	}
	return &QueryBuilder{
		opts:       opts,
		categories: geo.CategoryRules,
		landscapes: geo.LandscapeRules,
	}
}

// Build returns the full query, or "" when neither the category nor the landscape
// of filter resolves to a tag rule. filter.Region is ignored, regionCode scopes the query.
func (qb *QueryBuilder) Build(regionCode string, filter datastructure.SearchFilter) string {
	parts := []string{}
	if filter.Category != "" {
		if rule, ok := qb.categories[filter.Category]; ok {
			parts = append(parts, Clauses(rule)...)
		}
	}
	if filter.Landscape != "" {
		if rule, ok := qb.landscapes[filter.Landscape]; ok {
			parts = append(parts, Clauses(rule)...)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[out:json][timeout:%d];\n", qb.opts.Timeout)
	fmt.Fprintf(&sb, "area[\"ISO3166-2\"=%q]->.%s;\n", regionCode, AREA_SET)
	sb.WriteString("(\n")
	for _, p := range parts {
		sb.WriteString("  ")
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	sb.WriteString(");\n")
	fmt.Fprintf(&sb, "out center %d;\n", qb.opts.MaxElements)
	return sb.String()
}

// Clauses emits key presence clauses for key-only rules and key=value clauses otherwise.
func Clauses(rule geo.TagRule) []string {
	if rule.KeyOnly() {
		return KeyClauses(rule)
	}
	return KeyValueClauses(rule)
}

// KeyClauses: one clause per (key, kind).
func KeyClauses(rule geo.TagRule) []string {
	clauses := make([]string, 0, len(rule.Keys)*len(geo.ElementKinds))
	for _, key := range rule.Keys {
		for _, kind := range geo.ElementKinds {
			clauses = append(clauses, fmt.Sprintf("%s(area.%s)[%q];", kind, AREA_SET, key))
		}
	}
	return clauses
}

// KeyValueClauses: one clause per (value, key, kind).
func KeyValueClauses(rule geo.TagRule) []string {
	clauses := make([]string, 0, len(rule.Values)*len(rule.Keys)*len(geo.ElementKinds))
	for _, value := range rule.Values {
		for _, key := range rule.Keys {
			for _, kind := range geo.ElementKinds {
				clauses = append(clauses, fmt.Sprintf("%s(area.%s)[%q=%q];", kind, AREA_SET, key, value))
			}
		}
	}
	return clauses
}
