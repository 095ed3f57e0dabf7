package searcher

import (
	"context"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/overpass"
)

type Fetcher interface {
	FetchElements(ctx context.Context, query string) ([]overpass.Element, error)
}

type QueryBuilder interface {
	Build(regionCode string, filter datastructure.SearchFilter) string
}

type RegionIndex interface {
	Resolve(name string) (geo.Region, bool)
	Regions() []geo.Region
	Names() []string
	Suggest(name string, k int) []string
}

// BranchObserver is told how every fan-out branch settled.
type BranchObserver interface {
	ObserveBranch(regionCode string, found int, err error)
}

// ProgressFunc is called once per settled fan-out branch, possibly from several goroutines.
type ProgressFunc func(region geo.Region, found int, err error)
