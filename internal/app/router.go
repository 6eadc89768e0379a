package app

import (
	"net/http"

	"github.com/avc/drop-service/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, allowedOrigins []string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	setupMiddleware(r, allowedOrigins, logger)
	setupRoutes(r, deps, logger)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, allowedOrigins []string, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Compress(5, "application/json"))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, logger *zap.Logger) {
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{Registry: deps.registry}))

	r.Route("/api", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager, deps.services.session, logger))

		r.Get("/countries", deps.handlers.catalog.GetCountries)
		r.Get("/countries/{countryID}/banks", deps.handlers.catalog.GetBanks)
		r.Get("/banks/{bankID}/requisite", deps.handlers.catalog.ResolveRequisite)

		r.Post("/deals", deps.handlers.deals.CreateDeal)
		r.Get("/deals", deps.handlers.deals.GetMyDeals)
		r.Get("/deals/exchange", deps.handlers.deals.GetExchange)
		r.Get("/deals/{dealID}", deps.handlers.deals.GetDeal)
		r.Post("/deals/{dealID}/claim", deps.handlers.deals.ClaimDeal)

		r.Post("/checks", deps.handlers.checks.SubmitCheck)

		r.Get("/wallet", deps.handlers.wallet.GetWallet)
		r.Post("/wallet/withdrawals", deps.handlers.wallet.RequestWithdrawal)

		r.Get("/events", deps.handlers.events.Stream)
	})
}
