package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"hive-server/internal/observability"
	"hive-server/internal/scoring"
	"hive-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidAdjustment   = errors.New("invalid msp adjustment")
	ErrInvalidAward        = errors.New("invalid award")
	ErrAwardAlreadyApplied = errors.New("award already applied")
)

// AggregationStore defines the database operations required by the aggregation Processor
type AggregationStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetCampaignByTag(ctx context.Context, projectTag string) (store.Campaign, error)
	ListAllCampaigns(ctx context.Context) ([]store.Campaign, error)
	GetParticipant(ctx context.Context, campaignID, userID uuid.UUID) (store.Participant, error)
	CreateParticipant(ctx context.Context, params store.CreateParticipantParams) (store.Participant, error)
	ListParticipantsForRanking(ctx context.Context, campaignID uuid.UUID) ([]store.Participant, error)
	ListParticipationsByUser(ctx context.Context, userID uuid.UUID) ([]store.Participant, error)
	IncrementParticipantStats(ctx context.Context, campaignID, userID uuid.UUID, mspDelta int64, postDelta int) error
	IncrementUserParticipations(ctx context.Context, userID uuid.UUID, mspDelta int64) ([]uuid.UUID, error)
	SetParticipantMSP(ctx context.Context, campaignID, userID uuid.UUID, totalMSP int64) (store.Participant, error)
	BulkUpdateParticipantTotals(ctx context.Context, participantIDs []uuid.UUID, totals []int64, postCounts []int) error
	ListPostEventsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.PostEvent, error)
	BulkUpdatePostEventMSP(ctx context.Context, eventIDs []uuid.UUID, msps []int64) error
	SumPostsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.PostTotals, error)
	SumPostsByUser(ctx context.Context, userID uuid.UUID) (store.PostTotals, error)
	CreateMissionClaim(ctx context.Context, params store.CreateMissionClaimParams) (store.MissionClaim, error)
	SumClaimedMissionMSP(ctx context.Context, userID uuid.UUID) (int64, error)
	SumClaimedMissionMSPByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CreateInviteRedemption(ctx context.Context, params store.CreateInviteRedemptionParams) (store.InviteRedemption, error)
	SumInviteMSP(ctx context.Context, inviterID uuid.UUID) (int64, error)
	SumInviteMSPByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// RankRecalculator re-ranks a campaign leaderboard
type RankRecalculator interface {
	RecalculateRanks(ctx context.Context, campaignID uuid.UUID) error
}

// Processor keeps participant totals consistent with the ledger, mission
// claims and invite redemptions.
type Processor struct {
	store      AggregationStore
	calculator *scoring.Calculator
	ranker     RankRecalculator
	logger     *observability.Logger
}

// New creates an aggregation processor
func New(store AggregationStore, calculator *scoring.Calculator, ranker RankRecalculator, logger *observability.Logger) *Processor {
	return &Processor{
		store:      store,
		calculator: calculator,
		ranker:     ranker,
		logger:     logger,
	}
}

// Contributions are the three sources of a participant's MSP. Mission and
// invite MSP belong to the user and are the same in every campaign.
type Contributions struct {
	PostMSP    int64 `json:"post_msp"`
	MissionMSP int64 `json:"mission_msp"`
	InviteMSP  int64 `json:"invite_msp"`
}

// ComposeTotal is the single place the three contributions are combined.
func ComposeTotal(c Contributions) int64 {
	return c.PostMSP + c.MissionMSP + c.InviteMSP
}

// IncrementParticipantStats adds deltas to a participant's running totals in
// one atomic update.
func (p *Processor) IncrementParticipantStats(ctx context.Context, campaignID, userID uuid.UUID, mspDelta int64, postDelta int) error {
	if err := p.store.IncrementParticipantStats(ctx, campaignID, userID, mspDelta, postDelta); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to increment participant stats: %w", err)
	}
	return nil
}

// ParticipantDiff is a participant whose stored totals differ from the recomputed ones
type ParticipantDiff struct {
	ParticipantID uuid.UUID `json:"participant_id"`
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username"`
	OldMSP        int64     `json:"old_msp"`
	NewMSP        int64     `json:"new_msp"`
	OldPostCount  int       `json:"old_post_count"`
	NewPostCount  int       `json:"new_post_count"`
}

// RecomputeReport reports a full recompute of one campaign
type RecomputeReport struct {
	CampaignID            uuid.UUID         `json:"campaign_id"`
	DryRun                bool              `json:"dry_run"`
	ParticipantsProcessed int               `json:"participants_processed"`
	ParticipantsUpdated   int               `json:"participants_updated"`
	Diffs                 []ParticipantDiff `json:"diffs"`
}

// RecomputeAllReport reports a full recompute of every campaign
type RecomputeAllReport struct {
	DryRun                bool              `json:"dry_run"`
	Campaigns             []RecomputeReport `json:"campaigns"`
	ParticipantsProcessed int               `json:"participants_processed"`
	ParticipantsUpdated   int               `json:"participants_updated"`
	Errors                []string          `json:"errors"`
}

// RecomputeCampaign rebuilds every participant total of a campaign from the
// ledger plus the user's mission and invite MSP. It is idempotent. A dry run
// reports the differences without writing.
func (p *Processor) RecomputeCampaign(ctx context.Context, campaignID uuid.UUID, dryRun bool) (RecomputeReport, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "operation", Value: "recompute_campaign"},
		observability.Field{Key: "dry_run", Value: dryRun},
	)

	if _, err := p.store.GetCampaignByID(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RecomputeReport{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return RecomputeReport{}, fmt.Errorf("failed to get campaign: %w", err)
	}

	participants, err := p.store.ListParticipantsForRanking(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list participants", err)
		return RecomputeReport{}, fmt.Errorf("failed to list participants: %w", err)
	}

	postRows, err := p.store.SumPostsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to sum posts", err)
		return RecomputeReport{}, fmt.Errorf("failed to sum posts: %w", err)
	}
	posts := make(map[uuid.UUID]store.PostTotals, len(postRows))
	for _, row := range postRows {
		posts[row.UserID] = row
	}

	userIDs := make([]uuid.UUID, len(participants))
	for i, participant := range participants {
		userIDs[i] = participant.UserID
	}
	missions, err := p.store.SumClaimedMissionMSPByUsers(ctx, userIDs)
	if err != nil {
		p.logger.Error(ctx, "failed to sum mission claims", err)
		return RecomputeReport{}, fmt.Errorf("failed to sum mission claims: %w", err)
	}
	invites, err := p.store.SumInviteMSPByUsers(ctx, userIDs)
	if err != nil {
		p.logger.Error(ctx, "failed to sum invite redemptions", err)
		return RecomputeReport{}, fmt.Errorf("failed to sum invite redemptions: %w", err)
	}

	report := RecomputeReport{
		CampaignID:            campaignID,
		DryRun:                dryRun,
		ParticipantsProcessed: len(participants),
		Diffs:                 []ParticipantDiff{},
	}

	var ids []uuid.UUID
	var totals []int64
	var counts []int
	for _, participant := range participants {
		total := ComposeTotal(Contributions{
			PostMSP:    posts[participant.UserID].TotalMSP,
			MissionMSP: missions[participant.UserID],
			InviteMSP:  invites[participant.UserID],
		})
		postCount := posts[participant.UserID].PostCount
		if total == participant.TotalMSP && postCount == participant.PostCount {
			continue
		}

		report.Diffs = append(report.Diffs, ParticipantDiff{
			ParticipantID: participant.ID,
			UserID:        participant.UserID,
			Username:      participant.Username,
			OldMSP:        participant.TotalMSP,
			NewMSP:        total,
			OldPostCount:  participant.PostCount,
			NewPostCount:  postCount,
		})
		ids = append(ids, participant.ID)
		totals = append(totals, total)
		counts = append(counts, postCount)
	}
	report.ParticipantsUpdated = len(report.Diffs)

	if dryRun {
		p.logger.Info(ctx, "dry-run recompute completed", observability.Field{Key: "participants_updated", Value: report.ParticipantsUpdated})
		return report, nil
	}

	if len(ids) > 0 {
		if err := p.store.BulkUpdateParticipantTotals(ctx, ids, totals, counts); err != nil {
			p.logger.Error(ctx, "failed to update participant totals", err)
			return RecomputeReport{}, fmt.Errorf("failed to update participant totals: %w", err)
		}
	}
	if err := p.ranker.RecalculateRanks(ctx, campaignID); err != nil {
		p.logger.Error(ctx, "failed to recalculate ranks", err)
		return RecomputeReport{}, fmt.Errorf("failed to recalculate ranks: %w", err)
	}

	p.logger.Info(ctx, "recompute completed",
		observability.Field{Key: "participants_processed", Value: report.ParticipantsProcessed},
		observability.Field{Key: "participants_updated", Value: report.ParticipantsUpdated},
	)
	return report, nil
}

// RecomputeAll runs RecomputeCampaign over every campaign. Per-campaign
// failures are collected; only failing to list campaigns aborts.
func (p *Processor) RecomputeAll(ctx context.Context, dryRun bool) (RecomputeAllReport, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "operation", Value: "recompute_all"})

	campaigns, err := p.store.ListAllCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return RecomputeAllReport{}, fmt.Errorf("failed to list campaigns: %w", err)
	}

	report := RecomputeAllReport{DryRun: dryRun, Campaigns: []RecomputeReport{}, Errors: []string{}}
	for _, campaign := range campaigns {
		result, err := p.RecomputeCampaign(ctx, campaign.ID, dryRun)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", campaign.ProjectTag, err))
			continue
		}
		report.Campaigns = append(report.Campaigns, result)
		report.ParticipantsProcessed += result.ParticipantsProcessed
		report.ParticipantsUpdated += result.ParticipantsUpdated
	}
	return report, nil
}
