// Package metrics provides the centralized Prometheus metrics registry for
// the Horizon client. All metrics are defined in their respective packages
// (client, cache, ratelimit, page) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the Horizon client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Rate Limit Metrics (pkg/ratelimit):
//   - horizon_rate_limit_remaining (Gauge): Requests remaining in the current rate limit window
//   - horizon_rate_limit_blocks_total (Counter): Requests blocked due to critical rate limit
//   - horizon_rate_limit_throttles_total (Counter): Requests throttled due to low budget
//
// Cache Metrics (pkg/cache):
//   - horizon_cache_hits_total{layer="redis"} (Counter): Cache hits by layer
//   - horizon_cache_misses_total (Counter): Cache misses
//   - horizon_cache_size_bytes{layer="redis"} (Gauge): Current cache size in bytes
//   - horizon_304_responses_total (Counter): 304 Not Modified responses
//   - horizon_conditional_requests_total (Counter): Conditional requests sent with If-None-Match
//   - horizon_cache_errors_total{operation} (Counter): Cache operation errors
//
// Request Metrics (pkg/client):
//   - horizon_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - horizon_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - horizon_errors_total{class} (Counter): Errors by class (client, server, rate_limit, network)
//
// Retry Metrics (pkg/client):
//   - horizon_retries_total{error_class} (Counter): Retry attempts by error class
//   - horizon_retry_backoff_seconds{error_class} (Histogram): Backoff duration by error class
//   - horizon_retry_exhausted_total{error_class} (Counter): Requests that exhausted max retries
//
// Pagination Metrics (pkg/page):
//   - horizon_pages_fetched_total{collection, outcome} (Counter): Pages fetched by collection
//   - horizon_records_fetched_total{collection} (Counter): Records decoded by collection
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(horizon_cache_hits_total[5m])) /
//   (sum(rate(horizon_cache_hits_total[5m])) + sum(rate(horizon_cache_misses_total[5m])))
//
//   # Rate Limit Budget Status
//   horizon_rate_limit_remaining < 50
//
//   # Request Error Rate
//   rate(horizon_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(horizon_request_duration_seconds_bucket[5m]))
//
//   # 304 Response Rate
//   rate(horizon_304_responses_total[5m]) / rate(horizon_requests_total[5m])
