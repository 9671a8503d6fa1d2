package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"hive-server/internal/observability"
	"hive-server/internal/store"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Source names where a leaderboard page was read from
const (
	SourceCache    = "cache"
	SourceDatabase = "database"
)

// Processor handles leaderboard reads. The Redis snapshot is preferred and
// Postgres is the fallback.
type Processor struct {
	store  LeaderboardStore
	cache  LeaderboardCache
	logger *observability.Logger
}

// NewProcessor creates a new leaderboard processor. cache may be nil.
func NewProcessor(store LeaderboardStore, cache LeaderboardCache, logger *observability.Logger) *Processor {
	return &Processor{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Page is one page of a campaign leaderboard
type Page struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	Total      int       `json:"total"`
	Limit      int       `json:"limit"`
	Offset     int       `json:"offset"`
	Source     string    `json:"source"`
	Entries    []Entry   `json:"entries"`
}

// GetLeaderboard returns a page of a campaign leaderboard in rank order
func (p *Processor) GetLeaderboard(ctx context.Context, campaignID uuid.UUID, limit, offset int) (Page, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "operation", Value: "get_leaderboard"},
	)

	limit, offset = normalizePage(limit, offset)

	if err := p.checkPublicCampaign(ctx, campaignID); err != nil {
		return Page{}, err
	}

	page := Page{CampaignID: campaignID, Limit: limit, Offset: offset}

	if p.cache != nil {
		entries, total, ok, err := p.cache.Page(ctx, campaignID, limit, offset)
		if err != nil {
			p.logger.WarnWithError(ctx, "leaderboard cache read failed, falling back to database", err)
		} else if ok {
			page.Entries = entries
			page.Total = total
			page.Source = SourceCache
			return page, nil
		}
	}

	participants, err := p.store.ListLeaderboard(ctx, campaignID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list leaderboard", err)
		return Page{}, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	total, err := p.store.CountParticipants(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to count participants", err)
		return Page{}, fmt.Errorf("failed to count participants: %w", err)
	}

	page.Entries = make([]Entry, len(participants))
	for i, participant := range participants {
		rank := 0
		if participant.Rank != nil {
			rank = *participant.Rank
		}
		page.Entries[i] = entryFromParticipant(participant, rank)
	}
	page.Total = total
	page.Source = SourceDatabase
	return page, nil
}

// GetParticipantRank returns a user's current leaderboard entry in a campaign
func (p *Processor) GetParticipantRank(ctx context.Context, campaignID, userID uuid.UUID) (Entry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "user_id", Value: userID.String()},
	)

	if err := p.checkPublicCampaign(ctx, campaignID); err != nil {
		return Entry{}, err
	}

	participant, err := p.store.GetParticipant(ctx, campaignID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Entry{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to get participant", err)
		return Entry{}, fmt.Errorf("failed to get participant: %w", err)
	}

	rank := 0
	if participant.Rank != nil {
		rank = *participant.Rank
	}
	return entryFromParticipant(participant, rank), nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// checkPublicCampaign reports ErrCampaignNotFound for unknown campaigns and
// for the invite rewards bucket, which has no public leaderboard.
func (p *Processor) checkPublicCampaign(ctx context.Context, campaignID uuid.UUID) error {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.IsInviteBucket() {
		return ErrCampaignNotFound
	}
	return nil
}
