package searcher

import (
	"context"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
)

// Stats runs Search and counts the points per category label.
func (se *Searcher) Stats(ctx context.Context, filter datastructure.SearchFilter) (datastructure.SearchStats, error) {
	points, err := se.Search(ctx, filter)
	if err != nil {
		return datastructure.SearchStats{}, err
	}
	return Summarize(points), nil
}

func Summarize(points []datastructure.PointOfInterest) datastructure.SearchStats {
	stats := datastructure.SearchStats{
		Total:      len(points),
		Categories: make(map[string]int),
	}
	for _, p := range points {
		stats.Categories[p.Category]++
	}
	return stats
}
