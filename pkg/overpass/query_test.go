package overpass

import (
	"regexp"
	"strings"
	"testing"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyClauseRe      = regexp.MustCompile(`^(node|way|relation)\(area\.a\)\["[^"]+"\];$`)
	keyValueClauseRe = regexp.MustCompile(`^(node|way|relation)\(area\.a\)\["[^"]+"="[^"]+"\];$`)
)

// clauseLines returns the lines between the union parentheses.
func clauseLines(t *testing.T, query string) []string {
	t.Helper()
	start := strings.Index(query, "(\n")
	end := strings.LastIndex(query, ");")
	require.True(t, start >= 0 && end > start, "query has no union block: %s", query)

	lines := []string{}
	for _, l := range strings.Split(query[start+2:end], "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestBuildCategoryQuery(t *testing.T) {
	qb := NewQueryBuilder(DefaultQueryOptions())

	for id, rule := range geo.CategoryRules {
		t.Run(id, func(t *testing.T) {
			query := qb.Build("AR-M", datastructure.SearchFilter{Category: id})
			lines := clauseLines(t, query)

			assert.Len(t, lines, 3*len(rule.Keys))
			for _, l := range lines {
				assert.Regexp(t, keyClauseRe, l)
			}
			for _, key := range rule.Keys {
				for _, kind := range []string{"node", "way", "relation"} {
					assert.Contains(t, lines, kind+`(area.a)["`+key+`"];`)
				}
			}
		})
	}
}

func TestBuildLandscapeQuery(t *testing.T) {
	qb := NewQueryBuilder(DefaultQueryOptions())

	for id, rule := range geo.LandscapeRules {
		t.Run(id, func(t *testing.T) {
			query := qb.Build("AR-Q", datastructure.SearchFilter{Landscape: id})
			lines := clauseLines(t, query)

			assert.Len(t, lines, 3*len(rule.Keys)*len(rule.Values))
			for _, l := range lines {
				assert.Regexp(t, keyValueClauseRe, l)
			}
		})
	}

	t.Run("clause order is value, key, kind", func(t *testing.T) {
		lines := KeyValueClauses(geo.TagRule{Keys: []string{"natural", "waterway"}, Values: []string{"river"}})
		assert.Equal(t, []string{
			`node(area.a)["natural"="river"];`,
			`way(area.a)["natural"="river"];`,
			`relation(area.a)["natural"="river"];`,
			`node(area.a)["waterway"="river"];`,
			`way(area.a)["waterway"="river"];`,
			`relation(area.a)["waterway"="river"];`,
		}, lines)
	})
}

func TestBuildQueryEnvelope(t *testing.T) {
	qb := NewQueryBuilder(QueryOptions{Timeout: 25, MaxElements: 300})
	query := qb.Build("AR-A", datastructure.SearchFilter{Category: "turismo", Landscape: "rios_y_mar"})

	assert.True(t, strings.HasPrefix(query, "[out:json][timeout:25];\n"))
	assert.Contains(t, query, `area["ISO3166-2"="AR-A"]->.a;`)
	assert.True(t, strings.HasSuffix(query, "out center 300;\n"))

	rule := geo.LandscapeRules["rios_y_mar"]
	assert.Len(t, clauseLines(t, query), 3*1+3*len(rule.Keys)*len(rule.Values))
}

func TestBuildEmptyQuery(t *testing.T) {
	qb := NewQueryBuilder(DefaultQueryOptions())

	tests := []struct {
		name   string
		filter datastructure.SearchFilter
	}{
		{"no filter", datastructure.SearchFilter{}},
		{"region only", datastructure.SearchFilter{Region: "Mendoza"}},
		{"unknown category", datastructure.SearchFilter{Category: "playas"}},
		{"unknown landscape", datastructure.SearchFilter{Landscape: "desierto"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", qb.Build("AR-M", tt.filter))
		})
	}
}

func TestNewQueryBuilderDefaults(t *testing.T) {
	qb := NewQueryBuilder(QueryOptions{})
	query := qb.Build("AR-M", datastructure.SearchFilter{Category: "turismo"})

	assert.Contains(t, query, "[timeout:60]")
	assert.Contains(t, query, "out center 1000;")
}
