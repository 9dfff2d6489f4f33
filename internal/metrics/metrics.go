package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	bidOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_bid_outcomes_total",
			Help: "Bid submissions by outcome",
		},
		[]string{"outcome"},
	)

	auctionsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auction_listings_created_total",
			Help: "Auctions successfully listed",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		bidOutcomesTotal,
		auctionsCreatedTotal,
	)
}

// ObserveRequest records one handled HTTP request
func ObserveRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordBidOutcome counts a bid submission result, e.g. "accepted" or the
// rejection reason label.
func RecordBidOutcome(outcome string) {
	bidOutcomesTotal.WithLabelValues(outcome).Inc()
}

// RecordAuctionCreated counts a successful listing
func RecordAuctionCreated() {
	auctionsCreatedTotal.Inc()
}

// Handler exposes the prometheus scrape endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
