package searcher

import (
	"context"
	"fmt"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/concurrent"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"

	"go.uber.org/zap"
)

const (
	SUGGESTION_COUNT = 3
)

type Searcher struct {
	regions     RegionIndex
	builder     QueryBuilder
	fetcher     Fetcher
	log         *zap.Logger
	fanOutLimit int
	observer    BranchObserver
}

type Option func(*Searcher)

// WithFanOutLimit caps the branches in flight during a nationwide search. 0 fires all at once.
func WithFanOutLimit(limit int) Option {
	return func(se *Searcher) { se.fanOutLimit = limit }
}

func WithBranchObserver(observer BranchObserver) Option {
	return func(se *Searcher) { se.observer = observer }
}

func NewSearcher(regions RegionIndex, builder QueryBuilder, fetcher Fetcher, log *zap.Logger,
	opts ...Option) *Searcher {
	se := &Searcher{
		regions: regions,
		builder: builder,
		fetcher: fetcher,
		log:     log,
	}
	for _, opt := range opts {
		opt(se)
	}
	return se
}

// Search runs a single-region search when filter.Region is set and a nationwide
// fan-out otherwise. Without region and landscape it fails with ErrInvalidFilter.
func (se *Searcher) Search(ctx context.Context, filter datastructure.SearchFilter) ([]datastructure.PointOfInterest, error) {
	return se.SearchWithProgress(ctx, filter, nil)
}

// SearchWithProgress is Search reporting every settled fan-out branch to progress.
func (se *Searcher) SearchWithProgress(ctx context.Context, filter datastructure.SearchFilter,
	progress ProgressFunc) ([]datastructure.PointOfInterest, error) {
	points, _, err := se.SearchDetailed(ctx, filter, progress)
	return points, err
}

// SearchReport tells how many fan-out branches produced a search result and how
// many of them failed and were counted as empty.
type SearchReport struct {
	Branches       int
	FailedBranches int
}

// Partial reports whether some branch failed, so the result may be missing points.
func (r SearchReport) Partial() bool {
	return r.FailedBranches > 0
}

// SearchDetailed is SearchWithProgress also returning the branch report.
func (se *Searcher) SearchDetailed(ctx context.Context, filter datastructure.SearchFilter,
	progress ProgressFunc) ([]datastructure.PointOfInterest, SearchReport, error) {
	if filter.Region == "" && filter.Landscape == "" {
		return nil, SearchReport{}, ErrInvalidFilter
	}
	if filter.Region != "" {
		points, err := se.SearchRegion(ctx, filter)
		if err != nil {
			return nil, SearchReport{}, err
		}
		return points, SearchReport{Branches: 1}, nil
	}
	return se.searchAllRegions(ctx, filter, progress)
}

// SearchByLandscape searches every region for a landscape id.
func (se *Searcher) SearchByLandscape(ctx context.Context, landscape string) ([]datastructure.PointOfInterest, error) {
	return se.Search(ctx, datastructure.SearchFilter{Landscape: landscape})
}

// SearchByCategory searches one region for a category id.
func (se *Searcher) SearchByCategory(ctx context.Context, region, category string) ([]datastructure.PointOfInterest, error) {
	return se.Search(ctx, datastructure.SearchFilter{Region: region, Category: category})
}

func (se *Searcher) RegionNames() []string {
	return se.regions.Names()
}

// SearchRegion resolves filter.Region, builds one query and does a single round trip.
// transport failures are returned as is, nothing is retried.
func (se *Searcher) SearchRegion(ctx context.Context, filter datastructure.SearchFilter) ([]datastructure.PointOfInterest, error) {
	region, ok := se.regions.Resolve(filter.Region)
	if !ok {
		return nil, &UnknownRegionError{
			Name:        filter.Region,
			Suggestions: se.regions.Suggest(filter.Region, SUGGESTION_COUNT),
		}
	}

	query := se.builder.Build(region.Code, filter)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	elements, err := se.fetcher.FetchElements(ctx, query)
	if err != nil {
		se.log.Error("overpass search failed", zap.String("region", region.Code), zap.Error(err))
		return nil, fmt.Errorf("search region %s: %w", region.Code, err)
	}

	points := Normalize(elements, filter, region.Name)
	se.log.Debug("region search done", zap.String("region", region.Code),
		zap.Int("elements", len(elements)), zap.Int("points", len(points)))
	return points, nil
}

type branchJob struct {
	region geo.Region
	query  string
}

// SearchAllRegions queries every region concurrently and waits for all branches.
// a failing branch counts as an empty one, only "no query at all" is fatal.
// filter.Region is ignored.
func (se *Searcher) SearchAllRegions(ctx context.Context, filter datastructure.SearchFilter,
	progress ProgressFunc) ([]datastructure.PointOfInterest, error) {
	points, _, err := se.searchAllRegions(ctx, filter, progress)
	return points, err
}

func (se *Searcher) searchAllRegions(ctx context.Context, filter datastructure.SearchFilter,
	progress ProgressFunc) ([]datastructure.PointOfInterest, SearchReport, error) {
	filter.Region = ""

	jobs := []branchJob{}
	for _, region := range se.regions.Regions() {
		query := se.builder.Build(region.Code, filter)
		if query == "" {
			continue
		}
		jobs = append(jobs, branchJob{region: region, query: query})
	}
	if len(jobs) == 0 {
		return nil, SearchReport{}, ErrNoQueriesGenerated
	}

	results := concurrent.FanOut(ctx, se.fanOutLimit, jobs,
		func(ctx context.Context, job branchJob) ([]datastructure.PointOfInterest, error) {
			elements, err := se.fetcher.FetchElements(ctx, job.query)
			var points []datastructure.PointOfInterest
			if err == nil {
				points = Normalize(elements, filter, job.region.Name)
			}
			if progress != nil {
				progress(job.region, len(points), err)
			}
			return points, err
		})

	// an aborted search reports no branch outcome
	if err := ctx.Err(); err != nil {
		return nil, SearchReport{}, err
	}

	merged := []datastructure.PointOfInterest{}
	failed := 0
	for i, res := range results {
		code := jobs[i].region.Code
		if se.observer != nil {
			se.observer.ObserveBranch(code, len(res.Value), res.Err)
		}
		if res.Err != nil {
			failed++
			se.log.Warn("region branch failed, counted as empty", zap.String("region", code), zap.Error(res.Err))
			continue
		}
		merged = append(merged, res.Value...)
	}

	points := Dedup(merged)
	se.log.Info("nationwide search done",
		zap.Int("branches", len(jobs)),
		zap.Int("failed_branches", failed),
		zap.Int("points", len(merged)),
		zap.Int("unique_points", len(points)))
	return points, SearchReport{Branches: len(jobs), FailedBranches: failed}, nil
}
