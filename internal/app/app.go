package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avc/drop-service/internal/changefeed"
	"github.com/avc/drop-service/internal/config"
	"github.com/avc/drop-service/internal/notify"
	"github.com/avc/drop-service/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	workerPool *worker.Pool
	feed       *changefeed.Listener
	feedDone   chan struct{}
	notifier   notify.Notifier
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	deps, err := initDependencies(cfg, dbPool, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	router := setupRouter(deps, cfg.CORSAllowedOrigins, logger)
	server := createServer(cfg.RunAddress, router)
	server.RegisterOnShutdown(deps.handlers.events.Shutdown)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		workerPool: deps.workerPool,
		feed:       deps.feed,
		feedDone:   make(chan struct{}),
		notifier:   deps.notifier,
		server:     server,
	}, nil
}

// Run запускает приложение и блокируется до SIGINT/SIGTERM
// или падения HTTP сервера
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workerCtx, cancelWorkers := context.WithCancel(context.Background())

	go func() {
		defer close(a.feedDone)
		a.feed.Run(workerCtx)
	}()

	a.workerPool.Start(workerCtx)
	a.logger.Info("reconciler started",
		zap.Int("workers", a.config.WorkerPoolSize),
		zap.Duration("scan_interval", a.config.WorkerScanInterval),
	)

	err := a.runServer(ctx)

	a.shutdown(cancelWorkers)

	return err
}
