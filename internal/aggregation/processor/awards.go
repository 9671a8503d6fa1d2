package processor

import (
	"context"
	"errors"
	"fmt"
	"hive-server/internal/observability"
	"hive-server/internal/store"
	"strings"

	"github.com/google/uuid"
)

// Award sources
const (
	AwardSourceMission = "mission"
	AwardSourceInvite  = "invite"
)

// AdjustMSPParams describes an operator override. Exactly one of Delta and
// Absolute must be set.
type AdjustMSPParams struct {
	CampaignID uuid.UUID
	UserID     uuid.UUID
	Delta      *int64
	Absolute   *int64
	Reason     string
}

// AdjustMSP overrides a participant's total outside the scoring pipeline and
// re-ranks the campaign. The next full recompute replaces the override.
func (p *Processor) AdjustMSP(ctx context.Context, params AdjustMSPParams) (store.Participant, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: params.CampaignID.String()},
		observability.Field{Key: "user_id", Value: params.UserID.String()},
		observability.Field{Key: "operation", Value: "adjust_msp"},
	)

	if (params.Delta == nil) == (params.Absolute == nil) {
		return store.Participant{}, fmt.Errorf("%w: set exactly one of delta and absolute", ErrInvalidAdjustment)
	}

	participant, err := p.store.GetParticipant(ctx, params.CampaignID, params.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participant{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to get participant", err)
		return store.Participant{}, fmt.Errorf("failed to get participant: %w", err)
	}

	total := participant.TotalMSP
	if params.Delta != nil {
		total += *params.Delta
	} else {
		total = *params.Absolute
	}
	if total < 0 {
		return store.Participant{}, fmt.Errorf("%w: resulting total %d is negative", ErrInvalidAdjustment, total)
	}

	updated, err := p.store.SetParticipantMSP(ctx, params.CampaignID, params.UserID, total)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participant{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to set participant msp", err)
		return store.Participant{}, fmt.Errorf("failed to set participant msp: %w", err)
	}

	if err := p.ranker.RecalculateRanks(ctx, params.CampaignID); err != nil {
		p.logger.Error(ctx, "failed to recalculate ranks", err)
		return store.Participant{}, fmt.Errorf("failed to recalculate ranks: %w", err)
	}

	p.logger.Info(ctx, "adjusted participant msp",
		observability.Field{Key: "old_msp", Value: participant.TotalMSP},
		observability.Field{Key: "new_msp", Value: total},
		observability.Field{Key: "reason", Value: params.Reason},
	)
	return updated, nil
}

// UserAwardParams describes a mission or invite award. MissionID is required
// for missions and InviteeID for invites; UserID is the inviter.
type UserAwardParams struct {
	UserID    uuid.UUID
	Username  string
	MSP       int64
	Source    string
	MissionID string
	InviteeID *uuid.UUID
}

// UserAwardResult lists the campaigns whose totals moved
type UserAwardResult struct {
	UserID            uuid.UUID   `json:"user_id"`
	MSP               int64       `json:"msp"`
	Source            string      `json:"source"`
	AffectedCampaigns []uuid.UUID `json:"affected_campaigns"`
	Errors            []string    `json:"errors"`
}

// ApplyUserAward records a mission claim or invite redemption and adds its MSP
// to every participation of the user, then re-ranks each affected campaign.
func (p *Processor) ApplyUserAward(ctx context.Context, params UserAwardParams) (UserAwardResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: params.UserID.String()},
		observability.Field{Key: "award_source", Value: params.Source},
		observability.Field{Key: "operation", Value: "apply_user_award"},
	)

	if params.MSP <= 0 {
		return UserAwardResult{}, fmt.Errorf("%w: msp must be positive", ErrInvalidAward)
	}
	switch params.Source {
	case AwardSourceMission:
		if strings.TrimSpace(params.MissionID) == "" {
			return UserAwardResult{}, fmt.Errorf("%w: mission id is required", ErrInvalidAward)
		}
	case AwardSourceInvite:
		if params.InviteeID == nil || *params.InviteeID == params.UserID {
			return UserAwardResult{}, fmt.Errorf("%w: invitee must be another user", ErrInvalidAward)
		}
	default:
		return UserAwardResult{}, fmt.Errorf("%w: unknown source %q", ErrInvalidAward, params.Source)
	}

	// Join the invite bucket first so its initial total excludes this award.
	if err := p.ensureInviteBucketParticipant(ctx, params); err != nil {
		return UserAwardResult{}, err
	}

	if err := p.recordAward(ctx, params); err != nil {
		return UserAwardResult{}, err
	}

	affected, err := p.store.IncrementUserParticipations(ctx, params.UserID, params.MSP)
	if err != nil {
		p.logger.Error(ctx, "failed to propagate award", err)
		return UserAwardResult{}, fmt.Errorf("failed to propagate award: %w", err)
	}

	result := UserAwardResult{
		UserID:            params.UserID,
		MSP:               params.MSP,
		Source:            params.Source,
		AffectedCampaigns: affected,
		Errors:            []string{},
	}
	for _, campaignID := range affected {
		if err := p.ranker.RecalculateRanks(ctx, campaignID); err != nil {
			p.logger.Error(ctx, "failed to recalculate ranks", err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", campaignID, err))
		}
	}

	p.logger.Info(ctx, "applied user award",
		observability.Field{Key: "msp", Value: params.MSP},
		observability.Field{Key: "affected_campaigns", Value: len(affected)},
	)
	return result, nil
}

func (p *Processor) recordAward(ctx context.Context, params UserAwardParams) error {
	var err error
	switch params.Source {
	case AwardSourceMission:
		_, err = p.store.CreateMissionClaim(ctx, store.CreateMissionClaimParams{
			UserID:     params.UserID,
			MissionID:  params.MissionID,
			MSPAwarded: params.MSP,
			Status:     store.MissionClaimStatusClaimed,
		})
	case AwardSourceInvite:
		_, err = p.store.CreateInviteRedemption(ctx, store.CreateInviteRedemptionParams{
			InviterID:  params.UserID,
			InviteeID:  *params.InviteeID,
			MSPAwarded: params.MSP,
		})
	}
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrAwardAlreadyApplied
		}
		p.logger.Error(ctx, "failed to record award", err)
		return fmt.Errorf("failed to record award: %w", err)
	}
	return nil
}

// ensureInviteBucketParticipant makes sure the user has a row in the invite
// rewards campaign, seeded with the mission and invite MSP recorded so far.
func (p *Processor) ensureInviteBucketParticipant(ctx context.Context, params UserAwardParams) error {
	bucket, err := p.store.GetCampaignByTag(ctx, store.InviteRewardsTag)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "invite rewards campaign missing, award applies to joined campaigns only")
			return nil
		}
		p.logger.Error(ctx, "failed to get invite rewards campaign", err)
		return fmt.Errorf("failed to get invite rewards campaign: %w", err)
	}

	_, err = p.store.GetParticipant(ctx, bucket.ID, params.UserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to get invite rewards participant", err)
		return fmt.Errorf("failed to get invite rewards participant: %w", err)
	}

	contributions, err := p.userContributions(ctx, params.UserID)
	if err != nil {
		return err
	}

	username := params.Username
	if username == "" {
		username = params.UserID.String()
	}
	_, err = p.store.CreateParticipant(ctx, store.CreateParticipantParams{
		CampaignID: bucket.ID,
		UserID:     params.UserID,
		Username:   username,
		InitialMSP: contributions.MissionMSP + contributions.InviteMSP,
	})
	if err != nil && !errors.Is(err, store.ErrAlreadyExists) {
		p.logger.Error(ctx, "failed to join invite rewards campaign", err)
		return fmt.Errorf("failed to join invite rewards campaign: %w", err)
	}
	return nil
}

// CampaignTotal is a user's standing in one campaign
type CampaignTotal struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	TotalMSP   int64     `json:"total_msp"`
	PostCount  int       `json:"post_count"`
	Rank       *int      `json:"rank,omitempty"`
}

// UserTotals is a user's MSP across campaigns with mission and invite MSP
// counted once.
type UserTotals struct {
	UserID uuid.UUID `json:"user_id"`
	Contributions
	PostCount int             `json:"post_count"`
	TotalMSP  int64           `json:"total_msp"`
	Campaigns []CampaignTotal `json:"campaigns"`
}

// GetUserTotals returns a user's cross-campaign total
func (p *Processor) GetUserTotals(ctx context.Context, userID uuid.UUID) (UserTotals, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "operation", Value: "get_user_totals"},
	)

	posts, err := p.store.SumPostsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to sum user posts", err)
		return UserTotals{}, fmt.Errorf("failed to sum user posts: %w", err)
	}
	contributions, err := p.userContributions(ctx, userID)
	if err != nil {
		return UserTotals{}, err
	}
	contributions.PostMSP = posts.TotalMSP

	participations, err := p.store.ListParticipationsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list participations", err)
		return UserTotals{}, fmt.Errorf("failed to list participations: %w", err)
	}

	// The invite rewards bucket only carries add-ons already in Contributions.
	var bucketID uuid.UUID
	bucket, err := p.store.GetCampaignByTag(ctx, store.InviteRewardsTag)
	switch {
	case err == nil:
		bucketID = bucket.ID
	case errors.Is(err, store.ErrNotFound):
	default:
		p.logger.Error(ctx, "failed to get invite rewards campaign", err)
		return UserTotals{}, fmt.Errorf("failed to get invite rewards campaign: %w", err)
	}

	totals := UserTotals{
		UserID:        userID,
		Contributions: contributions,
		PostCount:     posts.PostCount,
		TotalMSP:      ComposeTotal(contributions),
		Campaigns:     make([]CampaignTotal, 0, len(participations)),
	}
	for _, participant := range participations {
		if participant.CampaignID == bucketID {
			continue
		}
		totals.Campaigns = append(totals.Campaigns, CampaignTotal{
			CampaignID: participant.CampaignID,
			TotalMSP:   participant.TotalMSP,
			PostCount:  participant.PostCount,
			Rank:       participant.Rank,
		})
	}
	return totals, nil
}

// userContributions returns the user-scoped mission and invite MSP
func (p *Processor) userContributions(ctx context.Context, userID uuid.UUID) (Contributions, error) {
	missions, err := p.store.SumClaimedMissionMSP(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to sum mission claims", err)
		return Contributions{}, fmt.Errorf("failed to sum mission claims: %w", err)
	}
	invites, err := p.store.SumInviteMSP(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to sum invite redemptions", err)
		return Contributions{}, fmt.Errorf("failed to sum invite redemptions: %w", err)
	}
	return Contributions{MissionMSP: missions, InviteMSP: invites}, nil
}
