package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name        string
	ProjectTag  string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	RewardPool  int64
}

const campaignColumns = `id, name, project_tag, description, start_date, end_date, status, reward_pool, created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (name, project_tag, description, start_date, end_date, status, reward_pool)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + campaignColumns

// CreateCampaign inserts a campaign. A duplicate project tag yields ErrAlreadyExists.
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.Name,
		params.ProjectTag,
		params.Description,
		params.StartDate,
		params.EndDate,
		params.Status,
		params.RewardPool)
	if err != nil {
		if isUniqueViolation(err) {
			return Campaign{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByTag = `SELECT ` + campaignColumns + ` FROM campaigns WHERE LOWER(project_tag) = LOWER($1)`

// GetCampaignByTag retrieves a campaign by its project tag, case-insensitively
func (s *Store) GetCampaignByTag(ctx context.Context, projectTag string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByTag, projectTag)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by tag", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by tag: %w", err)
	}
	return campaign, nil
}

const sqlListPublicCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE project_tag <> $1
ORDER BY start_date DESC, created_at DESC
`

// ListPublicCampaigns lists every campaign except the invite rewards bucket
func (s *Store) ListPublicCampaigns(ctx context.Context) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListPublicCampaigns, InviteRewardsTag)
	if err != nil {
		s.logger.Error(ctx, "failed to list public campaigns", err)
		return nil, fmt.Errorf("failed to list public campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlListAllCampaigns = `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY created_at ASC`

// ListAllCampaigns lists every campaign including the invite rewards bucket
func (s *Store) ListAllCampaigns(ctx context.Context) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListAllCampaigns)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlListActiveCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = $1 AND project_tag <> $2
ORDER BY created_at ASC
`

// ListActiveCampaigns lists the campaigns eligible for tracking
func (s *Store) ListActiveCampaigns(ctx context.Context) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListActiveCampaigns, CampaignStatusActive, InviteRewardsTag)
	if err != nil {
		s.logger.Error(ctx, "failed to list active campaigns", err)
		return nil, fmt.Errorf("failed to list active campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlUpdateCampaignStatus = `
UPDATE campaigns
SET status = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + campaignColumns

// UpdateCampaignStatus sets a campaign's status
func (s *Store) UpdateCampaignStatus(ctx context.Context, campaignID uuid.UUID, status string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaignStatus, campaignID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign status", err)
		return Campaign{}, fmt.Errorf("failed to update campaign status: %w", err)
	}
	return campaign, nil
}
