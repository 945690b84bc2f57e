package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger operation metrics
	DepositsCreated   prometheus.Counter
	TransfersCreated  prometheus.Counter
	TransfersReversed prometheus.Counter
	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec
	MovedAmount       *prometheus.HistogramVec

	// Account metrics
	AccountsCreated prometheus.Counter

	// Consistency check metrics
	ConsistencyChecks    prometheus.Counter
	InconsistentAccounts prometheus.Gauge

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Outbox metrics
	EventsPublished *prometheus.CounterVec
	PublishErrors   prometheus.Counter

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		DepositsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_deposits_created_total",
			Help: "Total number of deposits created",
		}),
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_transfers_created_total",
			Help: "Total number of transfers created",
		}),
		TransfersReversed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_transfers_reversed_total",
			Help: "Total number of transfers reversed",
		}),
		OperationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankledger_operation_duration_seconds",
				Help:    "Duration of ledger operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_operation_errors_total",
				Help: "Total number of ledger operation errors by type",
			},
			[]string{"operation", "error_type"},
		),
		MovedAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankledger_moved_amount",
				Help:    "Amounts moved per ledger operation",
				Buckets: []float64{1, 10, 100, 1000, 10000},
			},
			[]string{"operation"},
		),
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		ConsistencyChecks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_consistency_checks_total",
			Help: "Total number of ledger consistency checks run",
		}),
		InconsistentAccounts: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bankledger_inconsistent_accounts",
			Help: "Accounts whose balance disagrees with their entry history, per last check",
		}),
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankledger_http_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_events_published_total",
				Help: "Total number of outbox events published",
			},
			[]string{"event_type"},
		),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_publish_errors_total",
			Help: "Total number of outbox publish failures",
		}),
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_rate_limit_hits_total",
				Help: "Total number of rate limited requests",
			},
			[]string{"path"},
		),
	}
}
