package app

import (
	"fmt"

	"github.com/avc/drop-service/internal/blobstore"
	"github.com/avc/drop-service/internal/changefeed"
	"github.com/avc/drop-service/internal/config"
	"github.com/avc/drop-service/internal/domain"
	"github.com/avc/drop-service/internal/handlers"
	"github.com/avc/drop-service/internal/metrics"
	"github.com/avc/drop-service/internal/notify"
	"github.com/avc/drop-service/internal/repository/postgres"
	"github.com/avc/drop-service/internal/service"
	"github.com/avc/drop-service/internal/utils/jwt"
	"github.com/avc/drop-service/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	deal     domain.DealRepository
	catalog  domain.CatalogRepository
	check    domain.CheckRepository
	user     domain.UserRepository
	settings domain.SettingsRepository
}

// services содержит все сервисы приложения
type services struct {
	session domain.SessionService
	deal    *service.DealService
	catalog domain.CatalogService
	check   domain.CheckService
	wallet  domain.WalletService
	refresh domain.RefreshService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	deals   *handlers.DealsHandler
	catalog *handlers.CatalogHandler
	checks  *handlers.ChecksHandler
	wallet  *handlers.WalletHandler
	events  *handlers.EventsHandler
	health  *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	feed       *changefeed.Listener
	notifier   notify.Notifier
	registry   *prometheus.Registry
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	registry := metrics.NewRegistry()
	dealMetrics := metrics.NewDealMetrics(registry)

	repos := &repositories{
		deal:     postgres.NewDealRepository(dbPool),
		catalog:  postgres.NewCatalogRepository(dbPool),
		check:    postgres.NewCheckRepository(dbPool),
		user:     postgres.NewUserRepository(dbPool),
		settings: postgres.NewSettingsRepository(dbPool, cfg.DefaultUSDRate),
	}

	notifier, err := notify.New(notify.Config{
		Driver:       cfg.NotifyDriver,
		AMQPURL:      cfg.AMQPURL,
		AMQPExchange: cfg.AMQPExchange,
		KafkaBrokers: cfg.KafkaBrokers,
		KafkaTopic:   cfg.KafkaTopic,
	}, logger.Named("notify"))
	if err != nil {
		return nil, fmt.Errorf("failed to init notifier: %w", err)
	}

	blobs := blobstore.NewOS(cfg.BlobRoot, cfg.BlobPublicURL)
	feed := changefeed.NewListener(dbPool, logger.Named("changefeed"))
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	dealService := service.NewDealService(repos.deal, repos.catalog, notifier, dealMetrics, logger.Named("deals"))
	svcs := &services{
		session: service.NewSessionService(repos.user, repos.settings),
		deal:    dealService,
		catalog: service.NewCatalogService(repos.catalog, dealMetrics),
		check:   service.NewCheckService(repos.deal, repos.check, repos.catalog, blobs, dealService, dealMetrics, logger.Named("checks")),
		wallet:  service.NewWalletService(repos.user),
		refresh: service.NewRefresher(feed, repos.deal, repos.user, dealMetrics, logger.Named("refresh")),
	}

	hdlrs := &handlerSet{
		deals:   handlers.NewDealsHandler(svcs.deal, logger),
		catalog: handlers.NewCatalogHandler(svcs.catalog, logger),
		checks:  handlers.NewChecksHandler(svcs.check, logger),
		wallet:  handlers.NewWalletHandler(svcs.wallet, logger),
		events:  handlers.NewEventsHandler(svcs.refresh, logger),
		health: handlers.NewHealthHandler(dbPool, logger).
			WithCheck("blobstore", blobs).
			WithCheck("changefeed", feed),
	}

	workerPool := worker.NewPool(
		cfg.WorkerPoolSize,
		cfg.WorkerQueueSize,
		cfg.WorkerScanInterval,
		repos.deal,
		dealService,
		logger.Named("reconciler"),
	)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
		feed:       feed,
		notifier:   notifier,
		registry:   registry,
	}, nil
}
