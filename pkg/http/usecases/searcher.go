package usecases

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	go_cache "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

type SearcherService struct {
	log      *zap.Logger
	searcher Searcher
	regions  RegionIndex
	results  cache.CacheInterface[any]
	ttl      time.Duration
}

// New wires the searcher behind an in-memory result cache. ttl <= 0 disables the cache.
func New(log *zap.Logger, searcher Searcher, regions RegionIndex, ttl time.Duration) *SearcherService {
	s := &SearcherService{
		log:      log,
		searcher: searcher,
		regions:  regions,
		ttl:      ttl,
	}
	if ttl > 0 {
		goCache := gocache.New(ttl, 2*ttl)
		s.results = cache.New[any](go_cache.NewGoCache(goCache))
	}
	return s
}

// Regions lists display names, narrowed to those starting with prefix when it is set.
func (s *SearcherService) Regions(prefix string) ([]string, error) {
	if strings.TrimSpace(prefix) == "" {
		return s.searcher.RegionNames(), nil
	}
	return s.regions.WithPrefix(prefix)
}

func (s *SearcherService) Taxonomy() datastructure.Taxonomy {
	categories := maps.Keys(geo.CategoryRules)
	landscapes := maps.Keys(geo.LandscapeRules)
	slices.Sort(categories)
	slices.Sort(landscapes)
	return datastructure.Taxonomy{
		Categories: categories,
		Landscapes: landscapes,
	}
}

// Search returns the points matching filter, nearest first when near is set.
func (s *SearcherService) Search(ctx context.Context, filter datastructure.SearchFilter,
	near *datastructure.Coordinate) ([]datastructure.PointOfInterest, error) {
	points, err := s.search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if near == nil {
		return points, nil
	}

	// cached slices are shared between requests
	sorted := make([]datastructure.PointOfInterest, len(points))
	copy(sorted, points)
	geo.SortByDistance(sorted, near.Lat, near.Lon)
	return sorted, nil
}

func (s *SearcherService) Stats(ctx context.Context, filter datastructure.SearchFilter) (datastructure.SearchStats, error) {
	points, err := s.search(ctx, filter)
	if err != nil {
		return datastructure.SearchStats{}, err
	}
	return searcher.Summarize(points), nil
}

func (s *SearcherService) search(ctx context.Context, filter datastructure.SearchFilter) ([]datastructure.PointOfInterest, error) {
	if s.results == nil {
		points, _, err := s.searcher.SearchDetailed(ctx, filter, nil)
		return points, err
	}

	key := resultKey(filter)
	if cached, err := s.results.Get(ctx, key); err == nil {
		if points, ok := cached.([]datastructure.PointOfInterest); ok {
			s.log.Debug("result cache hit", zap.String("key", key))
			return points, nil
		}
	}

	points, report, err := s.searcher.SearchDetailed(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	// partial results are never cached
	if report.Partial() {
		s.log.Debug("partial search result not cached", zap.String("key", key),
			zap.Int("failed_branches", report.FailedBranches))
		return points, nil
	}
	if err := s.results.Set(ctx, key, points, store.WithExpiration(s.ttl)); err != nil {
		s.log.Warn("failed to cache search result", zap.String("key", key), zap.Error(err))
	}
	return points, nil
}

// region names resolve case-insensitively, so the key folds case too
func resultKey(filter datastructure.SearchFilter) string {
	return strings.Join([]string{
		strings.ToLower(filter.Region),
		filter.Category,
		filter.Landscape,
	}, "|")
}
