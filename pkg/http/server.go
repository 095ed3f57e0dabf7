package http

import (
	"context"

	http_router "github.com/danisdan-stack/APP-de-Turismo/pkg/http/http-router"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/http/http-router/controllers"
	http_server "github.com/danisdan-stack/APP-de-Turismo/pkg/http/server"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/metrics"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the API in the background. Wait blocks until it stops.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	searchService controllers.SearchService,
	collector *metrics.Collector,
) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)

	viper.SetDefault("API_TIMEOUT", "120s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log, collector)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(
			ctx, config, searchService,
		)
	})
	s.g = g

	return s, nil
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}
