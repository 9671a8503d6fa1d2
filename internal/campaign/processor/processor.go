package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"hive-server/internal/observability"
	"hive-server/internal/scoring"
	"hive-server/internal/store"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetCampaignByTag(ctx context.Context, projectTag string) (store.Campaign, error)
	ListPublicCampaigns(ctx context.Context) ([]store.Campaign, error)
	ListActiveCampaigns(ctx context.Context) ([]store.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID uuid.UUID, status string) (store.Campaign, error)
	CreateParticipant(ctx context.Context, params store.CreateParticipantParams) (store.Participant, error)
	UpdateParticipantWallet(ctx context.Context, campaignID, userID uuid.UUID, walletAddress string) (store.Participant, error)
	SumClaimedMissionMSP(ctx context.Context, userID uuid.UUID) (int64, error)
	SumInviteMSP(ctx context.Context, inviterID uuid.UUID) (int64, error)
}

// RankRecalculator re-ranks a campaign leaderboard
type RankRecalculator interface {
	RecalculateRanks(ctx context.Context, campaignID uuid.UUID) error
}

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrInvalidProjectTag     = errors.New("invalid project tag")
	ErrProjectTagExists      = errors.New("project tag already exists")
	ErrInvalidCampaignStatus = errors.New("invalid campaign status")
	ErrInvalidDateRange      = errors.New("end date must be after start date")
	ErrCampaignNotJoinable   = errors.New("campaign is not open for joining")
	ErrAlreadyJoined         = errors.New("already joined this campaign")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrParticipantNotFound   = errors.New("participant not found")
	ErrInvalidWalletAddress  = errors.New("invalid wallet address")
)

type CampaignProcessor struct {
	store  CampaignStore
	ranker RankRecalculator
	logger *observability.Logger
	now    func() time.Time
}

func New(store CampaignStore, ranker RankRecalculator, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		ranker: ranker,
		logger: logger,
		now:    time.Now,
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name        string
	ProjectTag  string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	RewardPool  int64
}

// CreateCampaign creates a campaign. Its status is derived from the dates.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	tag := scoring.NormalizeTag(params.ProjectTag)
	ctx = observability.WithFields(ctx, observability.Field{Key: "project_tag", Value: tag})

	if !scoring.ValidProjectTag(tag) {
		return store.Campaign{}, ErrInvalidProjectTag
	}
	if strings.EqualFold(tag, store.InviteRewardsTag) {
		return store.Campaign{}, ErrProjectTagExists
	}
	if !params.EndDate.After(params.StartDate) {
		return store.Campaign{}, ErrInvalidDateRange
	}

	_, err := p.store.GetCampaignByTag(ctx, tag)
	if err == nil {
		return store.Campaign{}, ErrProjectTagExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check project tag", err)
		return store.Campaign{}, fmt.Errorf("failed to check project tag: %w", err)
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Name:        strings.TrimSpace(params.Name),
		ProjectTag:  tag,
		Description: params.Description,
		StartDate:   params.StartDate.UTC(),
		EndDate:     params.EndDate.UTC(),
		Status:      statusForDates(p.now(), params.StartDate, params.EndDate),
		RewardPool:  params.RewardPool,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.Campaign{}, ErrProjectTagExists
		}
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	p.logger.Info(ctx, "campaign created", observability.Field{Key: "campaign_id", Value: campaign.ID.String()})
	return campaign, nil
}

// statusForDates is upcoming before start, ended after end and active otherwise
func statusForDates(now, start, end time.Time) string {
	switch {
	case now.Before(start):
		return store.CampaignStatusUpcoming
	case now.After(end):
		return store.CampaignStatusEnded
	default:
		return store.CampaignStatusActive
	}
}

// ListPublicCampaigns lists every campaign except the invite bucket
func (p *CampaignProcessor) ListPublicCampaigns(ctx context.Context) ([]store.Campaign, error) {
	campaigns, err := p.store.ListPublicCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// ListActiveCampaigns lists the campaigns a tracking run covers
func (p *CampaignProcessor) ListActiveCampaigns(ctx context.Context) ([]store.Campaign, error) {
	campaigns, err := p.store.ListActiveCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list active campaigns", err)
		return nil, fmt.Errorf("failed to list active campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaign retrieves a public campaign by ID. The invite rewards bucket is
// reported as not found.
func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.getCampaign(ctx, campaignID)
	if err != nil {
		return store.Campaign{}, err
	}
	if campaign.IsInviteBucket() {
		return store.Campaign{}, ErrCampaignNotFound
	}
	return campaign, nil
}

func (p *CampaignProcessor) getCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// UpdateCampaignStatus sets a campaign's status independently of its dates
func (p *CampaignProcessor) UpdateCampaignStatus(ctx context.Context, campaignID uuid.UUID, status string) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "status", Value: status},
	)

	if !isValidCampaignStatus(status) {
		return store.Campaign{}, ErrInvalidCampaignStatus
	}

	campaign, err := p.store.UpdateCampaignStatus(ctx, campaignID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign status", err)
		return store.Campaign{}, fmt.Errorf("failed to update campaign status: %w", err)
	}
	return campaign, nil
}

func isValidCampaignStatus(status string) bool {
	switch status {
	case store.CampaignStatusUpcoming, store.CampaignStatusActive, store.CampaignStatusEnded:
		return true
	}
	return false
}

// JoinCampaignParams represents parameters for joining a campaign
type JoinCampaignParams struct {
	CampaignID     uuid.UUID
	UserID         uuid.UUID
	Username       string
	DisplayName    *string
	FollowersCount int
	WalletAddress  *string
}

// JoinCampaign adds a user to a campaign with a snapshot of their follower
// count. The new participant starts with the user's mission and invite MSP.
func (p *CampaignProcessor) JoinCampaign(ctx context.Context, params JoinCampaignParams) (store.Participant, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: params.CampaignID.String()},
		observability.Field{Key: "user_id", Value: params.UserID.String()},
	)

	username := strings.TrimPrefix(strings.TrimSpace(params.Username), "@")
	if username == "" {
		return store.Participant{}, ErrInvalidUsername
	}

	campaign, err := p.getCampaign(ctx, params.CampaignID)
	if err != nil {
		return store.Participant{}, err
	}
	if campaign.IsInviteBucket() || campaign.Status == store.CampaignStatusEnded {
		return store.Participant{}, ErrCampaignNotJoinable
	}

	missions, err := p.store.SumClaimedMissionMSP(ctx, params.UserID)
	if err != nil {
		p.logger.Error(ctx, "failed to sum mission claims", err)
		return store.Participant{}, fmt.Errorf("failed to sum mission claims: %w", err)
	}
	invites, err := p.store.SumInviteMSP(ctx, params.UserID)
	if err != nil {
		p.logger.Error(ctx, "failed to sum invite redemptions", err)
		return store.Participant{}, fmt.Errorf("failed to sum invite redemptions: %w", err)
	}

	participant, err := p.store.CreateParticipant(ctx, store.CreateParticipantParams{
		CampaignID:     params.CampaignID,
		UserID:         params.UserID,
		Username:       username,
		DisplayName:    params.DisplayName,
		FollowersCount: params.FollowersCount,
		WalletAddress:  params.WalletAddress,
		InitialMSP:     missions + invites,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return store.Participant{}, ErrAlreadyJoined
		}
		p.logger.Error(ctx, "failed to join campaign", err)
		return store.Participant{}, fmt.Errorf("failed to join campaign: %w", err)
	}

	if err := p.ranker.RecalculateRanks(ctx, params.CampaignID); err != nil {
		p.logger.WarnWithError(ctx, "failed to rank new participant", err)
	}

	p.logger.Info(ctx, "user joined campaign", observability.Field{Key: "initial_msp", Value: participant.TotalMSP})
	return participant, nil
}

// UpdateWalletAddress sets the payout wallet, the only participant field a user may edit
func (p *CampaignProcessor) UpdateWalletAddress(ctx context.Context, campaignID, userID uuid.UUID, walletAddress string) (store.Participant, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "user_id", Value: userID.String()},
	)

	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" || strings.ContainsAny(wallet, " \t\n") {
		return store.Participant{}, ErrInvalidWalletAddress
	}

	participant, err := p.store.UpdateParticipantWallet(ctx, campaignID, userID, wallet)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participant{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to update wallet address", err)
		return store.Participant{}, fmt.Errorf("failed to update wallet address: %w", err)
	}
	return participant, nil
}
