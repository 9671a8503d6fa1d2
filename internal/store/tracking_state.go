package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const sqlGetTrackingState = `
SELECT campaign_id, last_tweet_id, total_tracked, last_run_at
FROM tracking_state
WHERE campaign_id = $1
`

// GetTrackingState retrieves a campaign's tracking watermark
func (s *Store) GetTrackingState(ctx context.Context, campaignID uuid.UUID) (TrackingState, error) {
	var state TrackingState
	err := s.db.GetContext(ctx, &state, sqlGetTrackingState, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackingState{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get tracking state", err)
		return TrackingState{}, fmt.Errorf("failed to get tracking state: %w", err)
	}
	return state, nil
}

const sqlUpsertTrackingState = `
INSERT INTO tracking_state (campaign_id, last_tweet_id, total_tracked, last_run_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (campaign_id) DO UPDATE
SET last_tweet_id = COALESCE(EXCLUDED.last_tweet_id, tracking_state.last_tweet_id),
    total_tracked = EXCLUDED.total_tracked,
    last_run_at = EXCLUDED.last_run_at
RETURNING campaign_id, last_tweet_id, total_tracked, last_run_at
`

// UpsertTrackingState writes a campaign's watermark. A nil lastTweetID keeps the stored one.
func (s *Store) UpsertTrackingState(ctx context.Context, campaignID uuid.UUID, lastTweetID *string, totalTracked int64, lastRunAt time.Time) (TrackingState, error) {
	var state TrackingState
	err := s.db.GetContext(ctx, &state, sqlUpsertTrackingState, campaignID, lastTweetID, totalTracked, lastRunAt)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert tracking state", err)
		return TrackingState{}, fmt.Errorf("failed to upsert tracking state: %w", err)
	}
	return state, nil
}
