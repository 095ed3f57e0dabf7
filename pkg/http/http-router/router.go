package http_router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/danisdan-stack/APP-de-Turismo/pkg/docs"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/http/http-router/controllers"
	router_helper "github.com/danisdan-stack/APP-de-Turismo/pkg/http/http-router/router-helper"
	http_server "github.com/danisdan-stack/APP-de-Turismo/pkg/http/server"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/metrics"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type API struct {
	log     *zap.Logger
	metrics *metrics.Collector
}

func NewAPI(log *zap.Logger, collector *metrics.Collector) *API {
	return &API{log: log, metrics: collector}
}

// Handler builds the router and its middleware chain.
func (api *API) Handler(searchService controllers.SearchService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", router_helper.REQUEST_ID_HEADER},
		ExposedHeaders:   []string{router_helper.REQUEST_ID_HEADER},
		AllowCredentials: false,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	searcherRoutes := controllers.New(searchService, api.log)
	searcherRoutes.Routes(group)

	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)
	if api.metrics != nil {
		router.Handler(http.MethodGet, "/metrics", api.metrics.Handler())
	}

	return alice.New(corsHandler.Handler, api.recoverPanic, RealIP, RequestID,
		Heartbeat("healthz"), Logger(api.log), api.metrics.Instrument, EnforceJSONHandler).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	searchService controllers.SearchService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(searchService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
