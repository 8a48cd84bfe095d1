// Package client provides the HTTP transport for the Horizon ledger query
// service: request execution with rate limiting, response caching, retry and
// error classification. The pagination engine in pkg/page consumes it
// through its Transport interface and stays free of these concerns.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lumenlab/horizon-client/pkg/cache"
	"github.com/lumenlab/horizon-client/pkg/logging"
	"github.com/lumenlab/horizon-client/pkg/ratelimit"
)

// Prometheus metrics for Horizon client operations.
var (
	horizonRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horizon_requests_total",
		Help: "Total Horizon requests by endpoint and status",
	}, []string{"endpoint", "status"})

	horizonRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "horizon_request_duration_seconds",
		Help:    "Horizon request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	horizonErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horizon_errors_total",
		Help: "Total Horizon errors by class",
	}, []string{"class"})
)

// ErrorClass represents a classification of HTTP errors.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassRateLimit represents 429 rate limit errors.
	ErrorClassRateLimit ErrorClass = "rate_limit"

	// ErrorClassNetwork represents network/timeout errors.
	ErrorClassNetwork ErrorClass = "network"
)

// Client is the Horizon transport client.
type Client struct {
	httpClient  *http.Client
	redis       *redis.Client
	rateLimiter *ratelimit.Tracker
	cache       *cache.Manager
	config      Config
	logger      zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// Host is the base URL of the ledger query service.
	Host string

	// Redis client for response caching and shared rate-limit state.
	// Optional: nil disables both.
	Redis *redis.Client

	// UserAgent identifies this client to the server.
	UserAgent string

	// Timeout applies per HTTP request.
	Timeout time.Duration
}

// DefaultConfig returns a safe default configuration for the public network.
func DefaultConfig(redisClient *redis.Client) Config {
	return Config{
		Host:      "https://horizon.stellar.org",
		Redis:     redisClient,
		UserAgent: "horizon-client/0.1.0",
		Timeout:   30 * time.Second,
	}
}

// New creates a new Horizon client.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := logging.NewLogger("horizon-client")

	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		redis:  cfg.Redis,
		config: cfg,
		logger: logger,
	}
	if cfg.Redis != nil {
		c.rateLimiter = ratelimit.NewTracker(cfg.Redis, logger)
		c.cache = cache.NewManager(cfg.Redis)
	}
	return c, nil
}

// Host returns the configured base URL.
func (c *Client) Host() string {
	return c.config.Host
}

// Do performs an HTTP request with rate limiting, caching, retry and error
// classification. Responses with status >= 400 that are not worth retrying
// are returned as-is; interpreting the status is the caller's concern.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	endpoint := req.URL.Path

	startTime := time.Now()
	defer func() {
		horizonRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	// Step 1: rate limit gate
	if c.rateLimiter != nil {
		allowed, err := c.rateLimiter.ShouldAllowRequest(ctx)
		if err != nil {
			c.logger.Error().Err(err).Msg("Rate limit check failed")
			return nil, fmt.Errorf("rate limit check: %w", err)
		}
		if !allowed {
			c.logger.Warn().
				Str("endpoint", endpoint).
				Msg("Request blocked by rate limiter")
			horizonRequestsTotal.WithLabelValues(endpoint, "rate_limited").Inc()
			return nil, fmt.Errorf("request blocked: rate limit critical")
		}
	}

	// Step 2: cache lookup
	var cachedEntry *cache.Entry
	var cacheKey cache.Key
	if c.cache != nil {
		cacheKey = cache.Key{
			Endpoint:    endpoint,
			QueryParams: req.URL.Query(),
		}

		entry, err := c.cache.Get(ctx, cacheKey)
		if err != nil && err != cache.ErrCacheMiss {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Cache get error")
		}
		cachedEntry = entry

		// Step 3: conditional request if the entry supports it
		if cachedEntry != nil && cache.ShouldMakeConditionalRequest(cachedEntry) {
			cache.AddConditionalHeaders(req, cachedEntry)
			cache.ConditionalRequestsSent.Inc()
			c.logger.Debug().
				Str("endpoint", endpoint).
				Str("etag", cachedEntry.ETag).
				Msg("Making conditional request")
		}
	}

	// Step 4: identifying headers
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	// Step 5: execute with retry
	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", req.Method).
		Msg("Executing Horizon request")

	var resp *http.Response
	var errClass ErrorClass

	retryErr := retryWithBackoff(ctx, func() error {
		var reqErr error
		resp, reqErr = c.httpClient.Do(req)

		if reqErr != nil {
			c.logger.Error().Err(reqErr).Str("endpoint", endpoint).Msg("HTTP request failed")
			errClass = c.classifyError(nil, reqErr)
			horizonErrorsTotal.WithLabelValues(string(errClass)).Inc()
			horizonRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
			return reqErr
		}

		if c.rateLimiter != nil {
			if err := c.rateLimiter.UpdateFromHeaders(ctx, resp.Header); err != nil {
				c.logger.Warn().Err(err).Msg("Failed to update rate limit from headers")
			}
		}

		// 304 Not Modified is a success, the cached entry is current
		if resp.StatusCode == http.StatusNotModified {
			return nil
		}

		if resp.StatusCode >= 400 {
			errClass = c.classifyError(resp, nil)
			horizonErrorsTotal.WithLabelValues(string(errClass)).Inc()
			horizonRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

			c.logger.Warn().
				Str("endpoint", endpoint).
				Int("status", resp.StatusCode).
				Str("error_class", string(errClass)).
				Msg("Horizon request error")

			if shouldRetry(errClass) {
				err := &HorizonError{
					StatusCode: resp.StatusCode,
					ErrorClass: errClass,
					Message:    resp.Status,
				}
				resp.Body.Close()
				return err
			}

			// Client errors are not retried; hand the response back as-is
			return nil
		}

		horizonRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
		return nil
	}, func(error) ErrorClass {
		return errClass
	})

	if retryErr != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		return nil, retryErr
	}

	// Step 6: serve 304 from cache
	if resp.StatusCode == http.StatusNotModified && cachedEntry != nil {
		c.logger.Debug().Str("endpoint", endpoint).Msg("304 Not Modified - using cache")
		horizonRequestsTotal.WithLabelValues(endpoint, "304").Inc()
		cache.NotModifiedResponses.Inc()

		if expiresStr := resp.Header.Get("Expires"); expiresStr != "" {
			if newExpires, err := http.ParseTime(expiresStr); err == nil {
				if err := c.cache.UpdateTTL(ctx, cacheKey, newExpires); err != nil {
					c.logger.Warn().Err(err).Msg("Failed to update cache TTL")
				}
			}
		}

		resp.Body.Close()
		return cache.EntryToResponse(cachedEntry), nil
	}

	// Step 7: cache successful responses
	if c.cache != nil && resp.StatusCode == http.StatusOK {
		entry, err := cache.ResponseToEntry(resp)
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to create cache entry")
		} else if entry.TTL() > 0 {
			if err := c.cache.Set(ctx, cacheKey, entry); err != nil {
				c.logger.Warn().Err(err).Msg("Failed to cache response")
			} else {
				c.logger.Debug().
					Str("endpoint", endpoint).
					Dur("ttl", entry.TTL()).
					Msg("Cached response")
			}
		}
	}

	return resp, nil
}

// Get performs a GET request against a path relative to the configured host.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	url := c.config.Host + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.Do(req)
}

// classifyError categorizes an error for observability and retry handling.
func (c *Client) classifyError(resp *http.Response, err error) ErrorClass {
	if err != nil {
		return ErrorClassNetwork
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrorClassRateLimit
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return ErrorClassClient
	case resp.StatusCode >= 500:
		return ErrorClassServer
	default:
		return ""
	}
}

// Close closes the client and releases resources.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
