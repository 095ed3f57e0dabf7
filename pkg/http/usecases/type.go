package usecases

import (
	"context"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"
)

type Searcher interface {
	SearchDetailed(ctx context.Context, filter datastructure.SearchFilter,
		progress searcher.ProgressFunc) ([]datastructure.PointOfInterest, searcher.SearchReport, error)
	RegionNames() []string
}

type RegionIndex interface {
	WithPrefix(prefix string) ([]string, error)
}
