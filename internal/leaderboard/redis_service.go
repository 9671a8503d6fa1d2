package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"hive-server/internal/clients/redis"
	"hive-server/internal/observability"
	"time"

	"github.com/google/uuid"
	redisLib "github.com/redis/go-redis/v9"
)

// cacheTTL bounds how long a leaderboard snapshot may outlive its last refresh.
const cacheTTL = 24 * time.Hour

// RedisLeaderboardService keeps a ranked snapshot of each campaign leaderboard
// in a Redis ZSET. Score is the rank, member is the JSON-encoded entry, so an
// ascending range is a leaderboard page.
type RedisLeaderboardService struct {
	redis  *redis.Client
	logger *observability.Logger
}

// NewRedisLeaderboardService creates a new Redis-based leaderboard cache
func NewRedisLeaderboardService(redis *redis.Client, logger *observability.Logger) *RedisLeaderboardService {
	return &RedisLeaderboardService{
		redis:  redis,
		logger: logger,
	}
}

// buildKey creates a namespaced Redis key
// Format: lb:{campaign_id}
func (s *RedisLeaderboardService) buildKey(campaignID uuid.UUID) string {
	return fmt.Sprintf("lb:%s", campaignID.String())
}

// Enabled reports whether Redis is available
func (s *RedisLeaderboardService) Enabled() bool {
	return s != nil && s.redis.IsEnabled()
}

// Replace overwrites the cached leaderboard of a campaign
func (s *RedisLeaderboardService) Replace(ctx context.Context, campaignID uuid.UUID, entries []Entry) error {
	if !s.Enabled() {
		return nil
	}

	members := make([]redisLib.Z, 0, len(entries))
	for _, e := range entries {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to encode leaderboard entry: %w", err)
		}
		members = append(members, redisLib.Z{Score: float64(e.Rank), Member: string(payload)})
	}

	if err := s.redis.ReplaceSortedSet(ctx, s.buildKey(campaignID), members, cacheTTL); err != nil {
		return fmt.Errorf("failed to replace leaderboard: %w", err)
	}
	return nil
}

// Page returns cached entries [offset, offset+limit) and the cached total.
// ok is false when the campaign has no snapshot.
func (s *RedisLeaderboardService) Page(ctx context.Context, campaignID uuid.UUID, limit, offset int) (entries []Entry, total int, ok bool, err error) {
	if !s.Enabled() {
		return nil, 0, false, nil
	}

	key := s.buildKey(campaignID)

	card, err := s.redis.ZCard(ctx, key)
	if err != nil {
		return nil, 0, false, fmt.Errorf("failed to count leaderboard: %w", err)
	}
	if card == 0 {
		return nil, 0, false, nil
	}

	members, err := s.redis.ZRange(ctx, key, int64(offset), int64(offset+limit-1))
	if err != nil {
		return nil, 0, false, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries = make([]Entry, 0, len(members))
	for _, m := range members {
		var e Entry
		if err := json.Unmarshal([]byte(m), &e); err != nil {
			return nil, 0, false, fmt.Errorf("failed to decode leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, int(card), true, nil
}

// Invalidate drops the cached leaderboard of a campaign
func (s *RedisLeaderboardService) Invalidate(ctx context.Context, campaignID uuid.UUID) error {
	if !s.Enabled() {
		return nil
	}
	return s.redis.Del(ctx, s.buildKey(campaignID))
}
