package searcher

import (
	"fmt"
	"strings"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/overpass"
)

// tags read when inferring labels and names, most specific first
var inferenceTags = []struct {
	key   string
	label string
}{
	{"tourism", geo.LabelTourism},
	{"natural", geo.LabelNature},
	{"amenity", geo.LabelLodging},
}

// Normalize maps raw elements to points of interest. Elements without coordinates
// and elements whose name resolves to the placeholder are dropped.
func Normalize(elements []overpass.Element, filter datastructure.SearchFilter, region string) []datastructure.PointOfInterest {
	points := make([]datastructure.PointOfInterest, 0, len(elements))
	for _, el := range elements {
		lat, lon, ok := el.Coordinates()
		if !ok {
			continue
		}

		name := resolveName(el.Tags)
		if name == geo.PlaceholderName {
			continue
		}

		points = append(points, datastructure.PointOfInterest{
			ID:       el.ID,
			Kind:     string(el.Type),
			Name:     name,
			Category: categoryLabel(filter, el.Tags),
			Lat:      lat,
			Lon:      lon,
			Tags:     el.Tags,
			Region:   region,
		})
	}
	return points
}

func categoryLabel(filter datastructure.SearchFilter, tags map[string]string) string {
	if filter.Category != "" {
		return filter.Category
	}
	if filter.Landscape != "" {
		return filter.Landscape
	}
	for _, it := range inferenceTags {
		if tags[it.key] != "" {
			return it.label
		}
	}
	return geo.LabelFallback
}

func resolveName(tags map[string]string) string {
	if name := tags["name"]; name != "" {
		return name
	}
	if name := nameFromTags(tags); name != "" {
		return name
	}
	return geo.PlaceholderName
}

// nameFromTags joins the most specific tag value with the name tag, e.g. "viewpoint".
func nameFromTags(tags map[string]string) string {
	for _, it := range inferenceTags {
		if v := tags[it.key]; v != "" {
			return strings.TrimSpace(v + " " + tags["name"])
		}
	}
	return ""
}

// Dedup keeps the first point per coordinate rounded to 4 decimals (~11m at the equator).
// distinct features closer than that collapse into one.
func Dedup(points []datastructure.PointOfInterest) []datastructure.PointOfInterest {
	seen := make(map[string]struct{}, len(points))
	unique := make([]datastructure.PointOfInterest, 0, len(points))
	for _, p := range points {
		key := dedupKey(p.Lat, p.Lon)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

func dedupKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f_%.4f", lat, lon)
}
