package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreatePostEventParams represents parameters for recording a tracked post.
// FollowersCount is the snapshot MSP was computed with.
type CreatePostEventParams struct {
	CampaignID     uuid.UUID
	UserID         uuid.UUID
	TweetID        string
	Content        string
	Likes          int
	Retweets       int
	Replies        int
	Quotes         int
	MSP            int64
	PostedAt       time.Time
	FollowersCount int
}

const postEventColumns = `id, campaign_id, user_id, tweet_id, content, likes, retweets, replies, quotes, msp, followers_count, posted_at, tracked_at`

const sqlIsTweetTracked = `SELECT EXISTS (SELECT 1 FROM post_events WHERE tweet_id = $1)`

// IsTweetTracked reports whether a post ID is already in the ledger
func (s *Store) IsTweetTracked(ctx context.Context, tweetID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlIsTweetTracked, tweetID)
	if err != nil {
		s.logger.Error(ctx, "failed to check tracked tweet", err)
		return false, fmt.Errorf("failed to check tracked tweet: %w", err)
	}
	return exists, nil
}

const sqlCreatePostEvent = `
INSERT INTO post_events (campaign_id, user_id, tweet_id, content, likes, retweets, replies, quotes, msp, posted_at, followers_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + postEventColumns

// CreatePostEvent appends a post to the ledger. The tweet_id unique index makes a
// concurrent double insert fail with ErrAlreadyExists.
func (s *Store) CreatePostEvent(ctx context.Context, params CreatePostEventParams) (PostEvent, error) {
	var event PostEvent
	err := s.db.GetContext(ctx, &event, sqlCreatePostEvent,
		params.CampaignID,
		params.UserID,
		params.TweetID,
		params.Content,
		params.Likes,
		params.Retweets,
		params.Replies,
		params.Quotes,
		params.MSP,
		params.PostedAt,
		params.FollowersCount)
	if err != nil {
		if isUniqueViolation(err) {
			return PostEvent{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create post event", err)
		return PostEvent{}, fmt.Errorf("failed to create post event: %w", err)
	}
	return event, nil
}

const sqlListPostEventsByCampaign = `
SELECT ` + postEventColumns + `
FROM post_events
WHERE campaign_id = $1
ORDER BY posted_at ASC, id ASC
`

// ListPostEventsByCampaign lists a campaign's ledger in posting order
func (s *Store) ListPostEventsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]PostEvent, error) {
	events := []PostEvent{}
	err := s.db.SelectContext(ctx, &events, sqlListPostEventsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list post events", err)
		return nil, fmt.Errorf("failed to list post events: %w", err)
	}
	return events, nil
}

const sqlBulkUpdatePostEventMSP = `
UPDATE post_events
SET msp = data.msp
FROM (SELECT unnest($1::uuid[]) AS event_id, unnest($2::bigint[]) AS msp) AS data
WHERE post_events.id = data.event_id
`

// BulkUpdatePostEventMSP rewrites stored scores for multiple posts in a single query
func (s *Store) BulkUpdatePostEventMSP(ctx context.Context, eventIDs []uuid.UUID, msps []int64) error {
	if len(eventIDs) != len(msps) {
		return fmt.Errorf("eventIDs and msps must have same length")
	}
	if len(eventIDs) == 0 {
		return nil
	}

	_, err := s.db.ExecContext(ctx, sqlBulkUpdatePostEventMSP, uuidStrings(eventIDs), msps)
	if err != nil {
		return fmt.Errorf("failed to bulk update post event msp: %w", err)
	}
	return nil
}

const sqlSumPostsByCampaign = `
SELECT user_id, COALESCE(SUM(msp), 0)::bigint AS total_msp, COUNT(*)::int AS post_count
FROM post_events
WHERE campaign_id = $1
GROUP BY user_id
`

// SumPostsByCampaign aggregates a campaign's ledger per user
func (s *Store) SumPostsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]PostTotals, error) {
	totals := []PostTotals{}
	err := s.db.SelectContext(ctx, &totals, sqlSumPostsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to sum posts by campaign", err)
		return nil, fmt.Errorf("failed to sum posts by campaign: %w", err)
	}
	return totals, nil
}

const sqlSumPostsByUser = `
SELECT $1::uuid AS user_id, COALESCE(SUM(p.msp), 0)::bigint AS total_msp, COUNT(p.id)::int AS post_count
FROM post_events p
JOIN campaigns c ON c.id = p.campaign_id
WHERE p.user_id = $1 AND c.project_tag <> $2
`

// SumPostsByUser aggregates a user's ledger across every campaign but the invite bucket
func (s *Store) SumPostsByUser(ctx context.Context, userID uuid.UUID) (PostTotals, error) {
	var totals PostTotals
	err := s.db.GetContext(ctx, &totals, sqlSumPostsByUser, userID, InviteRewardsTag)
	if err != nil {
		s.logger.Error(ctx, "failed to sum posts by user", err)
		return PostTotals{}, fmt.Errorf("failed to sum posts by user: %w", err)
	}
	return totals, nil
}
