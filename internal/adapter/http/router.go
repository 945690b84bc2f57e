package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dmarins/bankledger/internal/adapter/http/handler"
	"github.com/dmarins/bankledger/internal/adapter/http/middleware"
	"github.com/dmarins/bankledger/internal/infrastructure/metrics"
	"github.com/dmarins/bankledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler  *handler.AccountHandler
	DepositHandler  *handler.DepositHandler
	TransferHandler *handler.TransferHandler
	EntryHandler    *handler.EntryHandler
	LedgerHandler   *handler.LedgerHandler
	HealthHandler   *handler.HealthHandler

	Logger  zerolog.Logger
	Metrics *metrics.Metrics

	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration

	RateLimiter *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)

	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Patch("/{id}/status", cfg.AccountHandler.UpdateStatus)
			r.Get("/{id}/entries", cfg.EntryHandler.Statement)
		})

		r.Get("/users/{userID}/account", cfg.AccountHandler.GetByUser)

		// Deposits
		r.Post("/deposits", cfg.DepositHandler.Create)

		// Transfers and reversals
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", cfg.TransferHandler.Create)
			r.Post("/{entryID}/reverse", cfg.TransferHandler.Reverse)
		})

		// Entries
		r.Route("/entries", func(r chi.Router) {
			r.Get("/{id}", cfg.EntryHandler.Get)
			r.Get("/{id}/reversals", cfg.EntryHandler.Reversals)
		})

		// Ledger
		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
	})

	return r
}
