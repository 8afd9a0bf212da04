package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"mybusnow/internal/config"
	"mybusnow/internal/middleware"
)

const (
	shutdownTimeout      = 30 * time.Second
	limiterCleanupPeriod = 5 * time.Minute
)

func newServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Assistant.Timeout + 10*time.Second,
	}
}

// run serves until SIGINT or SIGTERM, then drains in-flight requests.
func run(srv *http.Server, limiter *middleware.RateLimiter) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go limiter.RunCleanup(ctx, limiterCleanupPeriod)

	serverErrors := make(chan error, 1)
	go func() {
		logrus.Infof("🚀 Server running at %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logrus.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logrus.Info("Server exited")
	return nil
}
