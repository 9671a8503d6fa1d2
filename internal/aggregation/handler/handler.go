package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"hive-server/internal/aggregation/processor"
	"hive-server/internal/apierrors"
	"hive-server/internal/observability"
	"hive-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Aggregator exposes the maintenance and award operations of the aggregation processor
type Aggregator interface {
	RecomputeCampaign(ctx context.Context, campaignID uuid.UUID, dryRun bool) (processor.RecomputeReport, error)
	RecomputeAll(ctx context.Context, dryRun bool) (processor.RecomputeAllReport, error)
	RescorePosts(ctx context.Context, campaignID *uuid.UUID, dryRun bool) (processor.RescoreReport, error)
	AdjustMSP(ctx context.Context, params processor.AdjustMSPParams) (store.Participant, error)
	ApplyUserAward(ctx context.Context, params processor.UserAwardParams) (processor.UserAwardResult, error)
	GetUserTotals(ctx context.Context, userID uuid.UUID) (processor.UserTotals, error)
}

type Handler struct {
	processor Aggregator
	logger    *observability.Logger
}

func New(processor Aggregator, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// MaintenanceRequest scopes a backfill or recompute. An empty campaign ID
// means every campaign.
type MaintenanceRequest struct {
	CampaignID string `json:"campaign_id" binding:"omitempty,uuid"`
	DryRun     bool   `json:"dry_run"`
}

// AdjustMSPRequest represents an operator override of a participant total
type AdjustMSPRequest struct {
	CampaignID string `json:"campaign_id" binding:"required,uuid"`
	UserID     string `json:"user_id" binding:"required,uuid"`
	Delta      *int64 `json:"delta,omitempty" binding:"required_without=Absolute,excluded_with=Absolute"`
	Absolute   *int64 `json:"absolute,omitempty" binding:"omitempty,gte=0"`
	Reason     string `json:"reason" binding:"required,min=3"`
}

// UserAwardRequest represents a mission or invite award
type UserAwardRequest struct {
	UserID    string  `json:"user_id" binding:"required,uuid"`
	Username  string  `json:"username" binding:"required"`
	MSP       int64   `json:"msp" binding:"gt=0"`
	Source    string  `json:"source" binding:"required,oneof=mission invite"`
	MissionID string  `json:"mission_id,omitempty"`
	InviteeID *string `json:"invitee_id,omitempty" binding:"omitempty,uuid"`
}

// HandleBackfillMSP re-scores stored posts and recomputes affected totals
func (h *Handler) HandleBackfillMSP(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := bindMaintenance(c)
	if !ok {
		return
	}

	var campaignID *uuid.UUID
	if req.CampaignID != "" {
		id := uuid.MustParse(req.CampaignID)
		campaignID = &id
		ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id.String()})
	}

	report, err := h.processor.RescorePosts(ctx, campaignID, req.DryRun)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleRecompute rebuilds participant totals of one campaign or of all campaigns
func (h *Handler) HandleRecompute(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := bindMaintenance(c)
	if !ok {
		return
	}

	if req.CampaignID == "" {
		report, err := h.processor.RecomputeAll(ctx, req.DryRun)
		if err != nil {
			apierrors.RespondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	campaignID := uuid.MustParse(req.CampaignID)
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	report, err := h.processor.RecomputeCampaign(ctx, campaignID, req.DryRun)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleAdjustMSP applies an operator override to one participant
func (h *Handler) HandleAdjustMSP(c *gin.Context) {
	ctx := c.Request.Context()

	var req AdjustMSPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.AdjustMSPParams{
		CampaignID: uuid.MustParse(req.CampaignID),
		UserID:     uuid.MustParse(req.UserID),
		Delta:      req.Delta,
		Absolute:   req.Absolute,
		Reason:     req.Reason,
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: params.CampaignID.String()},
		observability.Field{Key: "user_id", Value: params.UserID.String()},
		observability.Field{Key: "admin_id", Value: c.GetString("User-ID")},
	)

	participant, err := h.processor.AdjustMSP(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, participant)
}

// HandleApplyAward credits a mission or invite award to a user
func (h *Handler) HandleApplyAward(c *gin.Context) {
	ctx := c.Request.Context()

	var req UserAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.UserAwardParams{
		UserID:    uuid.MustParse(req.UserID),
		Username:  req.Username,
		MSP:       req.MSP,
		Source:    req.Source,
		MissionID: req.MissionID,
	}
	if req.InviteeID != nil {
		inviteeID := uuid.MustParse(*req.InviteeID)
		params.InviteeID = &inviteeID
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: params.UserID.String()},
		observability.Field{Key: "award_source", Value: params.Source},
	)

	result, err := h.processor.ApplyUserAward(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetMyTotals returns the authenticated user's cross-campaign MSP
func (h *Handler) HandleGetMyTotals(c *gin.Context) {
	ctx := c.Request.Context()

	userIDStr, exists := c.Get("User-ID")
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	totals, err := h.processor.GetUserTotals(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// bindMaintenance treats an empty body as "every campaign, not a dry run"
func bindMaintenance(c *gin.Context) (MaintenanceRequest, bool) {
	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.RespondWithValidationError(c, err)
		return MaintenanceRequest{}, false
	}
	return req, true
}
