package kv_di

import (
	"github.com/danisdan-stack/APP-de-Turismo/pkg/di/config"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/kvdb"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// New opens the overpass response cache. An empty CACHE_PATH disables it and
// yields a nil store.
func New(_ *config.Config, log *zap.Logger) (*kvdb.KVDB, func(), error) {
	viper.SetDefault("CACHE_PATH", "overpass_cache.db")
	viper.SetDefault("CACHE_TTL", "24h")

	path := viper.GetString("CACHE_PATH")
	if path == "" {
		log.Info("overpass response cache disabled")
		return nil, func() {}, nil
	}

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db, viper.GetDuration("CACHE_TTL"))
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	removed, err := bboltKV.Purge()
	if err != nil {
		log.Warn("failed to purge expired overpass responses", zap.Error(err))
	} else if removed > 0 {
		log.Info("purged expired overpass responses", zap.Int("removed", removed))
	}

	cleanup := func() {
		_ = bboltKV.Close()
		_ = db.Close()
	}

	return bboltKV, cleanup, nil
}
