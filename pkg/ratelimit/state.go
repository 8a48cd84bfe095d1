// Package ratelimit tracks the Horizon request rate limit and gates
// outgoing requests. It follows the X-Ratelimit-Remaining and
// X-Ratelimit-Reset response headers so that a shared client fleet backs off
// before the server starts returning 429s.
package ratelimit

import (
	"time"
)

// Redis keys for rate limit state storage.
const (
	RedisKeyRemaining      = "horizon:rate_limit:remaining"
	RedisKeyLimit          = "horizon:rate_limit:limit"
	RedisKeyResetTimestamp = "horizon:rate_limit:reset_timestamp"
	RedisKeyLastUpdate     = "horizon:rate_limit:last_update"
)

// Thresholds for rate limit decisions.
const (
	// ThresholdCritical blocks all requests when the remaining budget falls
	// below this value, leaving headroom for in-flight requests.
	ThresholdCritical = 5

	// ThresholdWarning applies throttling when the remaining budget falls
	// below this value, stretching the budget across the window.
	ThresholdWarning = 50

	// ThresholdHealthy indicates normal operation with no restrictions.
	ThresholdHealthy = 200
)

// State represents the current Horizon rate limit window.
// It is shared across all client instances via Redis.
type State struct {
	// Remaining is the number of requests left in the current window,
	// from the X-Ratelimit-Remaining header.
	Remaining int `json:"remaining"`

	// Limit is the total request budget of the window, from the
	// X-Ratelimit-Limit header.
	Limit int `json:"limit"`

	// ResetAt is when the window resets, calculated from the
	// X-Ratelimit-Reset header (seconds until reset).
	ResetAt time.Time `json:"reset_at"`

	// LastUpdate is when this state was last refreshed from headers.
	LastUpdate time.Time `json:"last_update"`

	// IsHealthy is true while Remaining is at or above ThresholdHealthy.
	IsHealthy bool `json:"is_healthy"`
}

// IsStale returns true if the state data is older than the given duration.
func (s *State) IsStale(maxAge time.Duration) bool {
	return time.Since(s.LastUpdate) > maxAge
}

// NeedsCriticalBlock returns true if requests should be blocked outright.
func (s *State) NeedsCriticalBlock() bool {
	return s.Remaining < ThresholdCritical
}

// NeedsThrottling returns true if requests should be slowed down.
func (s *State) NeedsThrottling() bool {
	return s.Remaining < ThresholdWarning && !s.NeedsCriticalBlock()
}

// TimeUntilReset returns the duration until the window resets.
// Returns 0 if the reset time has already passed.
func (s *State) TimeUntilReset() time.Duration {
	duration := time.Until(s.ResetAt)
	if duration < 0 {
		return 0
	}
	return duration
}

// UpdateHealth updates the IsHealthy field from the current Remaining value.
func (s *State) UpdateHealth() {
	s.IsHealthy = s.Remaining >= ThresholdHealthy
}
