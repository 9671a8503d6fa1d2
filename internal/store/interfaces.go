package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB

	// Campaign operations
	CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error)
	GetCampaignByTag(ctx context.Context, projectTag string) (Campaign, error)
	ListPublicCampaigns(ctx context.Context) ([]Campaign, error)
	ListAllCampaigns(ctx context.Context) ([]Campaign, error)
	ListActiveCampaigns(ctx context.Context) ([]Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID uuid.UUID, status string) (Campaign, error)

	// Participant operations
	CreateParticipant(ctx context.Context, params CreateParticipantParams) (Participant, error)
	GetParticipant(ctx context.Context, campaignID, userID uuid.UUID) (Participant, error)
	GetParticipantByUsername(ctx context.Context, campaignID uuid.UUID, username string) (Participant, error)
	ListParticipantsForRanking(ctx context.Context, campaignID uuid.UUID) ([]Participant, error)
	ListLeaderboard(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]Participant, error)
	CountParticipants(ctx context.Context, campaignID uuid.UUID) (int, error)
	ListParticipationsByUser(ctx context.Context, userID uuid.UUID) ([]Participant, error)
	IncrementParticipantStats(ctx context.Context, campaignID, userID uuid.UUID, mspDelta int64, postDelta int) error
	IncrementUserParticipations(ctx context.Context, userID uuid.UUID, mspDelta int64) ([]uuid.UUID, error)
	SetParticipantMSP(ctx context.Context, campaignID, userID uuid.UUID, totalMSP int64) (Participant, error)
	BulkUpdateParticipantRanks(ctx context.Context, participantIDs []uuid.UUID, ranks []int) error
	BulkUpdateParticipantTotals(ctx context.Context, participantIDs []uuid.UUID, totals []int64, postCounts []int) error
	UpdateParticipantWallet(ctx context.Context, campaignID, userID uuid.UUID, walletAddress string) (Participant, error)

	// Ledger operations
	IsTweetTracked(ctx context.Context, tweetID string) (bool, error)
	CreatePostEvent(ctx context.Context, params CreatePostEventParams) (PostEvent, error)
	ListPostEventsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]PostEvent, error)
	BulkUpdatePostEventMSP(ctx context.Context, eventIDs []uuid.UUID, msps []int64) error
	SumPostsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]PostTotals, error)
	SumPostsByUser(ctx context.Context, userID uuid.UUID) (PostTotals, error)

	// Tracking state operations
	GetTrackingState(ctx context.Context, campaignID uuid.UUID) (TrackingState, error)
	UpsertTrackingState(ctx context.Context, campaignID uuid.UUID, lastTweetID *string, totalTracked int64, lastRunAt time.Time) (TrackingState, error)

	// Reward operations
	CreateMissionClaim(ctx context.Context, params CreateMissionClaimParams) (MissionClaim, error)
	SumClaimedMissionMSP(ctx context.Context, userID uuid.UUID) (int64, error)
	SumClaimedMissionMSPByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CreateInviteRedemption(ctx context.Context, params CreateInviteRedemptionParams) (InviteRedemption, error)
	SumInviteMSP(ctx context.Context, inviterID uuid.UUID) (int64, error)
	SumInviteMSPByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

var _ Storer = (*Store)(nil)
