package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the operation counters.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"

	WebhookStatusStored    = "stored"
	WebhookStatusDuplicate = "duplicate"
	WebhookStatusError     = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_wallet_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pix_wallet_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	WalletCreationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_wallet_wallet_creation_total",
			Help: "Total number of wallet creation attempts",
		},
		[]string{"status"},
	)

	DepositOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_wallet_deposit_operations_total",
			Help: "Total number of deposit operations",
		},
		[]string{"status"},
	)

	WithdrawOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_wallet_withdraw_operations_total",
			Help: "Total number of withdraw operations",
		},
		[]string{"status"},
	)

	PixTransferTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_wallet_pix_transfer_total",
			Help: "Total number of Pix transfer requests",
		},
		[]string{"status"},
	)

	PixTransferDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pix_wallet_pix_transfer_duration_seconds",
			Help:    "Time spent executing a Pix transfer, including lock waits",
			Buckets: prometheus.DefBuckets,
		},
	)

	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_wallet_webhook_events_total",
			Help: "Total number of received Pix webhook events",
		},
		[]string{"event_type", "status"},
	)

	BalanceCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_wallet_balance_cache_lookups_total",
			Help: "Balance cache lookups by result",
		},
		[]string{"result"},
	)
)

func outcome(err error) string {
	if err != nil {
		return StatusFailure
	}
	return StatusSuccess
}

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordWalletCreation(err error) {
	WalletCreationTotal.WithLabelValues(outcome(err)).Inc()
}

func RecordDeposit(err error) {
	DepositOperationsTotal.WithLabelValues(outcome(err)).Inc()
}

func RecordWithdraw(err error) {
	WithdrawOperationsTotal.WithLabelValues(outcome(err)).Inc()
}

// RecordPixTransfer counts a transfer attempt and observes its duration in seconds.
func RecordPixTransfer(err error, duration float64) {
	PixTransferTotal.WithLabelValues(outcome(err)).Inc()
	PixTransferDuration.Observe(duration)
}

func RecordWebhookEvent(eventType, status string) {
	WebhookEventsTotal.WithLabelValues(eventType, status).Inc()
}

// RecordBalanceCacheLookup takes "hit", "miss" or "error".
func RecordBalanceCacheLookup(result string) {
	BalanceCacheLookupsTotal.WithLabelValues(result).Inc()
}
