package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"time"

	"hive-server/internal/apierrors"
	"hive-server/internal/campaign/processor"
	"hive-server/internal/observability"
	"hive-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignService is the subset of the campaign processor the handler serves
type CampaignService interface {
	CreateCampaign(ctx context.Context, params processor.CreateCampaignParams) (store.Campaign, error)
	ListPublicCampaigns(ctx context.Context) ([]store.Campaign, error)
	GetCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID uuid.UUID, status string) (store.Campaign, error)
	JoinCampaign(ctx context.Context, params processor.JoinCampaignParams) (store.Participant, error)
	UpdateWalletAddress(ctx context.Context, campaignID, userID uuid.UUID, walletAddress string) (store.Participant, error)
}

type Handler struct {
	processor CampaignService
	logger    *observability.Logger
}

func New(processor CampaignService, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name        string    `json:"name" binding:"required,min=1,max=255"`
	ProjectTag  string    `json:"project_tag" binding:"required"`
	Description *string   `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
	RewardPool  int64     `json:"reward_pool" binding:"gte=0"`
}

// UpdateCampaignStatusRequest represents the HTTP request for updating campaign status
type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=upcoming active ended"`
}

// JoinCampaignRequest carries the profile snapshot taken when a user joins.
// The follower count is never taken from the body; it comes from the token.
type JoinCampaignRequest struct {
	DisplayName   *string `json:"display_name,omitempty"`
	WalletAddress *string `json:"wallet_address,omitempty"`
}

// UpdateWalletRequest represents the HTTP request for setting a payout wallet
type UpdateWalletRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "project_tag", Value: req.ProjectTag})

	campaign, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignParams{
		Name:        req.Name,
		ProjectTag:  req.ProjectTag,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		RewardPool:  req.RewardPool,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists the public campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	campaigns, err := h.processor.ListPublicCampaigns(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetCampaign returns a single campaign
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := h.processor.GetCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateCampaignStatus overrides the derived campaign status
func (h *Handler) HandleUpdateCampaignStatus(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	var req UpdateCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaignStatus(ctx, campaignID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleJoinCampaign adds the authenticated user to a campaign
func (h *Handler) HandleJoinCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	var req JoinCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	participant, err := h.processor.JoinCampaign(ctx, processor.JoinCampaignParams{
		CampaignID:     campaignID,
		UserID:         userID,
		Username:       c.GetString("Username"),
		DisplayName:    req.DisplayName,
		FollowersCount: c.GetInt("Followers-Count"),
		WalletAddress:  req.WalletAddress,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, participant)
}

// HandleUpdateWallet sets the authenticated user's payout wallet in a campaign
func (h *Handler) HandleUpdateWallet(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	var req UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	participant, err := h.processor.UpdateWalletAddress(ctx, campaignID, userID, req.WalletAddress)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, participant)
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get("User-ID")
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return uuid.UUID{}, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return uuid.UUID{}, false
	}
	return userID, true
}

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return uuid.UUID{}, false
	}
	return campaignID, true
}
