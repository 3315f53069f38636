package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Account metrics
	AccountsCreated prometheus.Counter

	// Transaction metrics
	TransactionsCreated  prometheus.Counter
	TransactionsRejected *prometheus.CounterVec
	TransactionDuration  prometheus.Histogram
	TransactionAmount    prometheus.Histogram

	// Balance metrics
	BalanceCalculations prometheus.Counter
	BalanceDuration     prometheus.Histogram
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transactions_created_total",
			Help: "Total number of transactions posted",
		}),
		TransactionsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_rejected_total",
				Help: "Total number of rejected transactions by reason",
			},
			[]string{"reason"},
		),
		TransactionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_transaction_duration_seconds",
			Help:    "Duration of transaction posting",
			Buckets: prometheus.DefBuckets,
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_transaction_amount",
			Help:    "Posted transaction amounts (total debits)",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		BalanceCalculations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_balance_calculations_total",
			Help: "Total number of balance aggregations",
		}),
		BalanceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_balance_duration_seconds",
			Help:    "Duration of balance aggregations",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
