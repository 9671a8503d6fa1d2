package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"hive-server/internal/events"
	"hive-server/internal/observability"
	"hive-server/internal/store"
	"sort"
	"sync"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=rank_calculator.go -destination=mocks_test.go -package=leaderboard

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrParticipantNotFound = errors.New("participant not found")
)

// LeaderboardStore is the persistence needed to rank and read leaderboards
type LeaderboardStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListParticipantsForRanking(ctx context.Context, campaignID uuid.UUID) ([]store.Participant, error)
	BulkUpdateParticipantRanks(ctx context.Context, participantIDs []uuid.UUID, ranks []int) error
	ListLeaderboard(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]store.Participant, error)
	CountParticipants(ctx context.Context, campaignID uuid.UUID) (int, error)
	GetParticipant(ctx context.Context, campaignID, userID uuid.UUID) (store.Participant, error)
}

// LeaderboardCache holds ranked snapshots of campaign leaderboards
type LeaderboardCache interface {
	Replace(ctx context.Context, campaignID uuid.UUID, entries []Entry) error
	Page(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]Entry, int, bool, error)
	Invalidate(ctx context.Context, campaignID uuid.UUID) error
}

// EventPublisher announces new rankings
type EventPublisher interface {
	PublishLeaderboardUpdated(ctx context.Context, e events.LeaderboardUpdated) error
}

// Entry is one row of a campaign leaderboard
type Entry struct {
	Rank          int       `json:"rank"`
	ParticipantID uuid.UUID `json:"participant_id"`
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username"`
	DisplayName   *string   `json:"display_name,omitempty"`
	TotalMSP      int64     `json:"total_msp"`
	PostCount     int       `json:"post_count"`
}

// RankCalculator assigns dense 1-based ranks to a campaign's participants
type RankCalculator struct {
	store     LeaderboardStore
	cache     LeaderboardCache
	publisher EventPublisher
	logger    *observability.Logger

	// Per-campaign mutex so two recalculations of one campaign never interleave writes
	campaignLocks sync.Map // map[uuid.UUID]*sync.Mutex
}

// NewRankCalculator creates a new RankCalculator. cache and publisher may be nil.
func NewRankCalculator(store LeaderboardStore, cache LeaderboardCache, publisher EventPublisher, logger *observability.Logger) *RankCalculator {
	return &RankCalculator{
		store:     store,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// RecalculateRanks ranks every participant of a campaign by total MSP and
// writes all ranks in one statement. It is idempotent.
func (rc *RankCalculator) RecalculateRanks(ctx context.Context, campaignID uuid.UUID) error {
	lock := rc.getCampaignLock(campaignID)
	lock.Lock()
	defer lock.Unlock()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "operation", Value: "recalculate_ranks"},
	)

	if _, err := rc.store.GetCampaignByID(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		rc.logger.Error(ctx, "failed to get campaign", err)
		return fmt.Errorf("failed to get campaign: %w", err)
	}

	participants, err := rc.store.ListParticipantsForRanking(ctx, campaignID)
	if err != nil {
		rc.logger.Error(ctx, "failed to get participants for ranking", err)
		return fmt.Errorf("failed to get participants: %w", err)
	}

	ranked := rankParticipants(participants)

	participantIDs := make([]uuid.UUID, len(ranked))
	ranks := make([]int, len(ranked))
	for i, e := range ranked {
		participantIDs[i] = e.ParticipantID
		ranks[i] = e.Rank
	}

	if err := rc.store.BulkUpdateParticipantRanks(ctx, participantIDs, ranks); err != nil {
		rc.logger.Error(ctx, "failed to bulk update ranks", err)
		return fmt.Errorf("failed to update ranks: %w", err)
	}

	if rc.cache != nil {
		if err := rc.cache.Replace(ctx, campaignID, ranked); err != nil {
			rc.logger.WarnWithError(ctx, "failed to refresh leaderboard cache", err)
			// A stale snapshot must not outlive the new ranks
			if err := rc.cache.Invalidate(ctx, campaignID); err != nil {
				rc.logger.WarnWithError(ctx, "failed to invalidate leaderboard cache", err)
			}
		}
	}
	if rc.publisher != nil {
		if err := rc.publisher.PublishLeaderboardUpdated(ctx, events.LeaderboardUpdated{CampaignID: campaignID, Participants: len(ranked)}); err != nil {
			rc.logger.WarnWithError(ctx, "failed to publish leaderboard updated event", err)
		}
	}

	rc.logger.Info(ctx, "recalculated ranks", observability.Field{Key: "participant_count", Value: len(ranked)})
	return nil
}

// rankParticipants orders participants by (total_msp DESC, joined_at ASC, id ASC)
// and assigns ranks 1..n in that order.
func rankParticipants(participants []store.Participant) []Entry {
	sorted := make([]store.Participant, len(participants))
	copy(sorted, participants)

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.TotalMSP != b.TotalMSP {
			return a.TotalMSP > b.TotalMSP
		}
		if !a.JoinedAt.Equal(b.JoinedAt) {
			return a.JoinedAt.Before(b.JoinedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	entries := make([]Entry, len(sorted))
	for i, p := range sorted {
		entries[i] = entryFromParticipant(p, i+1)
	}
	return entries
}

func entryFromParticipant(p store.Participant, rank int) Entry {
	return Entry{
		Rank:          rank,
		ParticipantID: p.ID,
		UserID:        p.UserID,
		Username:      p.Username,
		DisplayName:   p.DisplayName,
		TotalMSP:      p.TotalMSP,
		PostCount:     p.PostCount,
	}
}

// getCampaignLock gets or creates a mutex for the given campaign
func (rc *RankCalculator) getCampaignLock(campaignID uuid.UUID) *sync.Mutex {
	actual, _ := rc.campaignLocks.LoadOrStore(campaignID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
