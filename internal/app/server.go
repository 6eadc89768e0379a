package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	serverReadTimeout  = 15 * time.Second
	serverWriteTimeout = 15 * time.Second
	serverIdleTimeout  = 60 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// createServer создает HTTP сервер
func createServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}
}

// runServer обслуживает запросы до отмены ctx, затем останавливает
// прием новых соединений. Потоки событий закрываются вместе с контекстом
// запросов.
func (a *App) runServer(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("starting HTTP server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", zap.Error(err))
			return a.server.Close()
		}
		return nil
	})

	return g.Wait()
}

// shutdown останавливает фоновые компоненты и закрывает соединения
func (a *App) shutdown(cancelWorkers context.CancelFunc) {
	cancelWorkers()
	a.workerPool.Stop()
	a.logger.Info("reconciler stopped")

	<-a.feedDone
	a.logger.Info("change feed stopped")

	if err := a.notifier.Close(); err != nil {
		a.logger.Error("failed to close notifier", zap.Error(err))
	}

	a.db.Close()
	a.logger.Info("database connection closed")

	a.logger.Info("server stopped gracefully")
	_ = a.logger.Sync()
}
