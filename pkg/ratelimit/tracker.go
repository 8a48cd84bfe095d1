package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Prometheus metrics for rate limit tracking.
var (
	horizonRequestsRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "horizon_rate_limit_remaining",
		Help: "Number of requests remaining in current Horizon rate limit window",
	})

	horizonRateLimitBlocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "horizon_rate_limit_blocks_total",
		Help: "Total number of requests blocked due to critical rate limit",
	})

	horizonRateLimitThrottlesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "horizon_rate_limit_throttles_total",
		Help: "Total number of requests throttled due to low rate limit budget",
	})
)

// Tracker monitors the Horizon rate limit window and gates requests.
type Tracker struct {
	redis  *redis.Client
	logger zerolog.Logger
}

// NewTracker creates a new rate limit tracker.
func NewTracker(redisClient *redis.Client, logger zerolog.Logger) *Tracker {
	return &Tracker{
		redis:  redisClient,
		logger: logger,
	}
}

// GetState retrieves the current rate limit state from Redis.
// Returns a default healthy state if no data exists in Redis.
func (t *Tracker) GetState(ctx context.Context) (*State, error) {
	remaining, err := t.redis.Get(ctx, RedisKeyRemaining).Int()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get remaining: %w", err)
	}

	limit, err := t.redis.Get(ctx, RedisKeyLimit).Int()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get limit: %w", err)
	}

	resetTimestamp, err := t.redis.Get(ctx, RedisKeyResetTimestamp).Int64()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get reset timestamp: %w", err)
	}

	lastUpdateStr, err := t.redis.Get(ctx, RedisKeyLastUpdate).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get last update: %w", err)
	}

	// If no state exists in Redis, return default healthy state
	if err == redis.Nil {
		t.logger.Debug().Msg("No rate limit state in Redis, returning default healthy state")
		return &State{
			Remaining:  ThresholdHealthy,
			Limit:      ThresholdHealthy,
			ResetAt:    time.Now().Add(60 * time.Second),
			LastUpdate: time.Now(),
			IsHealthy:  true,
		}, nil
	}

	var lastUpdate time.Time
	if lastUpdateStr != "" {
		if err := json.Unmarshal([]byte(lastUpdateStr), &lastUpdate); err != nil {
			return nil, fmt.Errorf("parse last update: %w", err)
		}
	}

	state := &State{
		Remaining:  remaining,
		Limit:      limit,
		ResetAt:    time.Unix(resetTimestamp, 0),
		LastUpdate: lastUpdate,
	}
	state.UpdateHealth()

	return state, nil
}

// UpdateFromHeaders parses Horizon rate limit headers and updates Redis state.
func (t *Tracker) UpdateFromHeaders(ctx context.Context, headers http.Header) error {
	remainStr := headers.Get("X-Ratelimit-Remaining")
	if remainStr == "" {
		// Header not present - Horizon omits it on some deployments
		return nil
	}

	remain, err := strconv.Atoi(remainStr)
	if err != nil {
		return fmt.Errorf("parse X-Ratelimit-Remaining header: %w", err)
	}

	limit := 0
	if limitStr := headers.Get("X-Ratelimit-Limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			return fmt.Errorf("parse X-Ratelimit-Limit header: %w", err)
		}
	}

	// X-Ratelimit-Reset carries seconds until the window resets
	resetStr := headers.Get("X-Ratelimit-Reset")
	if resetStr == "" {
		return fmt.Errorf("X-Ratelimit-Reset header missing")
	}

	resetSeconds, err := strconv.Atoi(resetStr)
	if err != nil {
		return fmt.Errorf("parse X-Ratelimit-Reset header: %w", err)
	}

	now := time.Now()
	state := &State{
		Remaining:  remain,
		Limit:      limit,
		ResetAt:    now.Add(time.Duration(resetSeconds) * time.Second),
		LastUpdate: now,
	}
	state.UpdateHealth()

	// Store in Redis atomically
	pipe := t.redis.Pipeline()
	pipe.Set(ctx, RedisKeyRemaining, remain, 0)
	pipe.Set(ctx, RedisKeyLimit, limit, 0)
	pipe.Set(ctx, RedisKeyResetTimestamp, state.ResetAt.Unix(), 0)

	lastUpdateJSON, err := json.Marshal(state.LastUpdate)
	if err != nil {
		return fmt.Errorf("marshal last update: %w", err)
	}
	pipe.Set(ctx, RedisKeyLastUpdate, lastUpdateJSON, 0)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("store rate limit state in redis: %w", err)
	}

	horizonRequestsRemaining.Set(float64(remain))

	logEvent := t.logger.Info().
		Int("remaining", remain).
		Time("reset_at", state.ResetAt).
		Bool("is_healthy", state.IsHealthy)

	if state.NeedsCriticalBlock() {
		logEvent = t.logger.Error()
		logEvent.Msg("Horizon rate limit CRITICAL - requests will be blocked")
	} else if state.NeedsThrottling() {
		logEvent = t.logger.Warn()
		logEvent.Msg("Horizon rate limit WARNING - requests will be throttled")
	} else {
		logEvent.Msg("Horizon rate limit state updated")
	}

	return nil
}

// ShouldAllowRequest checks if a request should be allowed based on current rate limit state.
// Returns false if the request should be blocked due to a critical budget.
// Returns true but may sleep for throttling when the budget is low.
func (t *Tracker) ShouldAllowRequest(ctx context.Context) (bool, error) {
	state, err := t.GetState(ctx)
	if err != nil {
		return false, fmt.Errorf("get rate limit state: %w", err)
	}

	// Critical: block all requests
	if state.NeedsCriticalBlock() {
		waitDuration := state.TimeUntilReset()

		t.logger.Error().
			Int("remaining", state.Remaining).
			Dur("wait_duration", waitDuration).
			Msg("Horizon rate limit critical - blocking request")

		horizonRateLimitBlocksTotal.Inc()
		return false, nil
	}

	// Warning: apply throttling (1 second sleep)
	if state.NeedsThrottling() {
		t.logger.Warn().
			Int("remaining", state.Remaining).
			Msg("Horizon rate limit warning - throttling request")

		horizonRateLimitThrottlesTotal.Inc()
		time.Sleep(1 * time.Second)
	}

	return true, nil
}
