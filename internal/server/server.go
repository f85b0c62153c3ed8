package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"
)

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most shutdownTimeout. It returns early if the listener fails.
func Run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger logr.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		logger.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", shutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := multierr.Append(srv.Shutdown(shutdownCtx), <-serveErr)
	if err == nil {
		logger.Info("Server stopped")
	}
	return err
}
