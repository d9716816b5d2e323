package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fakhrymubarak/sunny-weather/internal/caiyun"
	"github.com/fakhrymubarak/sunny-weather/internal/config"
	"github.com/fakhrymubarak/sunny-weather/internal/middleware"
	"github.com/fakhrymubarak/sunny-weather/internal/redis"
	"github.com/fakhrymubarak/sunny-weather/internal/repository"
	"github.com/fakhrymubarak/sunny-weather/internal/server"
	"github.com/fakhrymubarak/sunny-weather/internal/store"
)

func newHTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + config.GetServerPort(),
		Handler:           handler,
		ReadHeaderTimeout: config.GetServerTimeoutDuration("read_header_timeout", 15*time.Second),
		ReadTimeout:       config.GetServerTimeoutDuration("read_timeout", 15*time.Second),
		WriteTimeout:      config.GetServerTimeoutDuration("write_timeout", 10*time.Second),
		IdleTimeout:       config.GetServerTimeoutDuration("idle_timeout", 30*time.Second),
	}
}

func main() {
	logger := config.GetLogger()
	defer logger.Sync()

	if config.GetCaiyunToken() == "" {
		logger.Warnw("CAIYUN_TOKEN is not set; every remote call will fail")
	}

	places, err := store.NewPlaceStore()
	if err != nil {
		logger.Fatalw("Could not open place store", "driver", config.GetPlaceStoreDriver(), "error", err)
	}
	defer places.Close()

	repo := repository.NewRepository(caiyun.NewClient(), places)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	middleware.StartRateLimiterCleanup(ctx)

	srv := newHTTPServer(server.NewRouter(repo))
	go func() {
		logger.Infow("Sunny weather server running", "addr", srv.Addr, "place_store", config.GetPlaceStoreDriver())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("ListenAndServe failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Infow("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		config.GetServerTimeoutDuration("shutdown_timeout", 10*time.Second))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("Server shutdown failed", "error", err)
	}
	if err := redis.Close(); err != nil {
		logger.Warnw("Closing redis client failed", "error", err)
	}
	logger.Infow("Shutdown complete")
}
