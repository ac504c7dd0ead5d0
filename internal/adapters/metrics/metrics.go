package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentas_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rentas_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// Authentication & Authorization

	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentas_auth_attempts_total",
			Help: "Total number of sign-in and sign-up attempts",
		},
		[]string{"operation", "status"},
	)

	TokenValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentas_token_validations_total",
			Help: "Total number of access token validation attempts",
		},
		[]string{"status"},
	)

	AccessDeniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentas_access_denied_total",
			Help: "Total number of requests rejected by the authorization policy",
		},
		[]string{"status"},
	)

	// Rental contracts

	ContractOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentas_contract_operations_total",
			Help: "Total number of rental contract lifecycle operations",
		},
		[]string{"operation", "status"},
	)
)
