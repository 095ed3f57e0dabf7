package controllers

import (
	"context"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
)

type SearchService interface {
	Regions(prefix string) ([]string, error)
	Taxonomy() datastructure.Taxonomy
	Search(ctx context.Context, filter datastructure.SearchFilter, near *datastructure.Coordinate) ([]datastructure.PointOfInterest, error)
	Stats(ctx context.Context, filter datastructure.SearchFilter) (datastructure.SearchStats, error)
}
