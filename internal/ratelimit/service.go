package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"hive-server/internal/observability"
	"sync"
	"time"
)

// WindowStore is a distributed sliding window counter
type WindowStore interface {
	IsEnabled() bool
	SlidingWindowHit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, time.Time, error)
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service handles per-caller rate limiting. Redis is preferred so limits hold
// across instances; an in-process window is used when Redis is unavailable.
type Service struct {
	redis  WindowStore
	memory *memoryWindow
	window time.Duration
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a new rate limiting service. redis may be nil.
func NewService(redis WindowStore, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		memory: newMemoryWindow(),
		window: time.Minute,
		logger: logger,
		now:    time.Now,
	}
}

// CheckRateLimit records one request for key and reports whether it is within
// limit requests per window.
func (s *Service) CheckRateLimit(ctx context.Context, key string, limit int) RateLimitResult {
	now := s.now()

	if s.redis != nil && s.redis.IsEnabled() {
		count, oldest, err := s.redis.SlidingWindowHit(ctx, "rl:"+key, now, s.window)
		if err == nil {
			return s.result(now, int(count), oldest, limit)
		}
		s.logger.WarnWithError(ctx, "Redis rate limit check failed, falling back to in-memory window", err)
	}

	count, oldest := s.memory.hit(key, now, s.window)
	return s.result(now, count, oldest, limit)
}

// result builds the response from the number of hits already in the window
// before this request.
func (s *Service) result(now time.Time, count int, oldest time.Time, limit int) RateLimitResult {
	resetAt := oldest.Add(s.window)
	if count >= limit {
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}
	}
	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - count - 1,
		ResetAt:   resetAt,
	}
}

type memoryWindow struct {
	mu   sync.Mutex
	hits map[string][]time.Time
}

func newMemoryWindow() *memoryWindow {
	return &memoryWindow{hits: make(map[string][]time.Time)}
}

// hit mirrors the Redis sliding window: expired hits are dropped, the current
// hit is recorded and the prior count and oldest hit are returned.
func (m *memoryWindow) hit(key string, now time.Time, window time.Duration) (int, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := now.Add(-window)
	kept := m.hits[key][:0]
	for _, t := range m.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	count := len(kept)
	oldest := now
	if count > 0 {
		oldest = kept[0]
	}
	m.hits[key] = append(kept, now)
	return count, oldest
}
