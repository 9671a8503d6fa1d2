package processor

import (
	"context"
	"errors"
	"fmt"
	"hive-server/internal/discovery"
	"hive-server/internal/observability"
	"hive-server/internal/scoring"
	"hive-server/internal/store"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BackfillPostParams describes a post added by an operator outside discovery
type BackfillPostParams struct {
	CampaignID     uuid.UUID
	TweetID        string
	Username       string
	Text           string
	Metrics        scoring.Metrics
	PostedAt       time.Time
	FollowersCount *int
}

// BackfillPost records a single post without fetching it. Unlike a tracking
// cycle, every rejection is returned as an error.
func (p *Processor) BackfillPost(ctx context.Context, params BackfillPostParams) (store.PostEvent, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: params.CampaignID.String()},
		observability.Field{Key: "tweet_id", Value: params.TweetID},
		observability.Field{Key: "operation", Value: "backfill_post"},
	)

	campaign, err := p.store.GetCampaignByID(ctx, params.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.PostEvent{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.PostEvent{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.IsInviteBucket() {
		return store.PostEvent{}, ErrCampaignNotTrackable
	}

	candidate := discovery.Candidate{
		ID:             strings.TrimSpace(params.TweetID),
		AuthorUsername: strings.TrimPrefix(strings.TrimSpace(params.Username), "@"),
		Text:           params.Text,
		Metrics:        params.Metrics,
		CreatedAt:      params.PostedAt.UTC(),
	}
	if candidate.ID == "" || candidate.AuthorUsername == "" {
		return store.PostEvent{}, fmt.Errorf("%w: tweet id and username are required", ErrInvalidPost)
	}
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = p.now().UTC()
	}
	if !scoring.IsValidPost(candidate.Text, campaign.ProjectTag) {
		return store.PostEvent{}, fmt.Errorf("%w: text must contain %s and #%s", ErrInvalidPost, scoring.PlatformTag, scoring.NormalizeTag(campaign.ProjectTag))
	}

	tracked, err := p.store.IsTweetTracked(ctx, candidate.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to check ledger", err)
		return store.PostEvent{}, fmt.Errorf("failed to check ledger: %w", err)
	}
	if tracked {
		return store.PostEvent{}, ErrAlreadyTracked
	}

	participant, err := p.store.GetParticipantByUsername(ctx, campaign.ID, candidate.AuthorUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.PostEvent{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to look up participant", err)
		return store.PostEvent{}, fmt.Errorf("failed to look up participant: %w", err)
	}
	if params.FollowersCount != nil {
		participant.FollowersCount = *params.FollowersCount
	}

	event, err := p.recordPost(ctx, campaign, participant, candidate)
	if err != nil {
		return store.PostEvent{}, err
	}

	if err := p.aggregator.IncrementParticipantStats(ctx, campaign.ID, participant.UserID, event.MSP, 1); err != nil {
		p.logger.Error(ctx, "failed to increment participant stats", err)
		return store.PostEvent{}, fmt.Errorf("failed to increment participant stats: %w", err)
	}

	if err := p.ranker.RecalculateRanks(ctx, campaign.ID); err != nil {
		p.logger.Error(ctx, "failed to recalculate ranks", err)
		return store.PostEvent{}, fmt.Errorf("failed to recalculate ranks: %w", err)
	}

	p.publishPost(ctx, event)

	p.logger.Info(ctx, "backfilled post", observability.Field{Key: "msp", Value: event.MSP})
	return event, nil
}
