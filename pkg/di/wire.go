//go:build wireinject

//go:generate wire
package di

import (
	"context"
	"time"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/di/config"
	shortcontext "github.com/danisdan-stack/APP-de-Turismo/pkg/di/context"
	kv_di "github.com/danisdan-stack/APP-de-Turismo/pkg/di/kv"
	logger_di "github.com/danisdan-stack/APP-de-Turismo/pkg/di/logger"
	metrics_di "github.com/danisdan-stack/APP-de-Turismo/pkg/di/metrics"
	searcher_di "github.com/danisdan-stack/APP-de-Turismo/pkg/di/searcher"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"
	searchHttp "github.com/danisdan-stack/APP-de-Turismo/pkg/http"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/http/http-router/controllers"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/http/usecases"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/metrics"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	config.New,
	logger_di.New,
	kv_di.New,
	metrics_di.New,
	searcher_di.NewRegionIndex,
	searcher_di.NewQueryBuilder,
	searcher_di.NewOverpassClient,
	searcher_di.New,
)

var searcherSet = wire.NewSet(
	defaultSet,
	shortcontext.New,
	searcher_di.ResultCacheTTL,
	NewSearcherService,
	NewSearchAPIServer,
)

func NewSearcherService(log *zap.Logger, searcher *searcher.Searcher, regions *geo.RegionIndex,
	ttl time.Duration) controllers.SearchService {
	return usecases.New(log, searcher, regions, ttl)
}

func NewSearchAPIServer(ctx context.Context, log *zap.Logger,
	searchService controllers.SearchService, collector *metrics.Collector) (*searchHttp.Server, error) {
	api := searchHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, searchService, collector,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeSearcherService() (*searchHttp.Server, func(), error) {

	panic(wire.Build(searcherSet))
}

func InitializeSearcher() (*searcher.Searcher, func(), error) {

	panic(wire.Build(defaultSet))
}
