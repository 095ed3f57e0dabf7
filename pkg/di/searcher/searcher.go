package searcher_di

import (
	"time"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/di/config"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/geo"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/kvdb"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/metrics"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/overpass"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/searcher"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func NewRegionIndex() (*geo.RegionIndex, error) {
	return geo.NewRegionIndex(geo.Regions)
}

func NewQueryBuilder(_ *config.Config) *overpass.QueryBuilder {
	viper.SetDefault("OVERPASS_TIMEOUT", overpass.DEFAULT_TIMEOUT)
	viper.SetDefault("OVERPASS_MAX_ELEMENTS", overpass.DEFAULT_MAX_ELEMENTS)

	return overpass.NewQueryBuilder(overpass.QueryOptions{
		Timeout:     viper.GetInt("OVERPASS_TIMEOUT"),
		MaxElements: viper.GetInt("OVERPASS_MAX_ELEMENTS"),
	})
}

func NewOverpassClient(_ *config.Config, log *zap.Logger, db *kvdb.KVDB,
	collector *metrics.Collector) *overpass.Client {
	viper.SetDefault("OVERPASS_URL", overpass.DEFAULT_URL)
	viper.SetDefault("OVERPASS_HTTP_TIMEOUT", overpass.DEFAULT_HTTP_TIMEOUT.String())
	viper.SetDefault("OVERPASS_RATE_LIMIT", 0)
	viper.SetDefault("OVERPASS_RATE_BURST", 1)

	opts := []overpass.Option{overpass.WithObserver(collector)}
	if db != nil {
		opts = append(opts, overpass.WithCache(db))
	}

	return overpass.NewClient(overpass.Config{
		URL:         viper.GetString("OVERPASS_URL"),
		HTTPTimeout: viper.GetDuration("OVERPASS_HTTP_TIMEOUT"),
		RateLimit:   viper.GetFloat64("OVERPASS_RATE_LIMIT"),
		RateBurst:   viper.GetInt("OVERPASS_RATE_BURST"),
	}, log, opts...)
}

func New(regions *geo.RegionIndex, builder *overpass.QueryBuilder, client *overpass.Client,
	log *zap.Logger, collector *metrics.Collector) *searcher.Searcher {
	viper.SetDefault("FANOUT_CONCURRENCY", 0)

	return searcher.NewSearcher(regions, builder, client, log,
		searcher.WithFanOutLimit(viper.GetInt("FANOUT_CONCURRENCY")),
		searcher.WithBranchObserver(collector),
	)
}

func ResultCacheTTL(_ *config.Config) time.Duration {
	viper.SetDefault("RESULT_CACHE_TTL", "10m")
	return viper.GetDuration("RESULT_CACHE_TTL")
}
