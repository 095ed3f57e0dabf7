package http_server

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	SHUTDOWN_TIMEOUT = 10 * time.Second
)

type Config struct {
	Port    int
	Timeout time.Duration
}

// New returns a server that shuts down gracefully once ctx is done.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       config.Timeout,
		WriteTimeout:      config.Timeout,
		IdleTimeout:       time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return srv
}
