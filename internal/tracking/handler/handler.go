package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"time"

	"hive-server/internal/apierrors"
	"hive-server/internal/observability"
	"hive-server/internal/scoring"
	"hive-server/internal/store"
	"hive-server/internal/tracking/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Tracker runs tracking cycles and manual backfills
type Tracker interface {
	RunActiveCampaigns(ctx context.Context) (processor.RunSummary, error)
	RunCampaign(ctx context.Context, campaignID uuid.UUID) (processor.CampaignResult, error)
	BackfillPost(ctx context.Context, params processor.BackfillPostParams) (store.PostEvent, error)
}

type Handler struct {
	processor Tracker
	logger    *observability.Logger
}

func New(processor Tracker, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// BackfillPostRequest represents a post submitted by an operator
type BackfillPostRequest struct {
	CampaignID     string    `json:"campaign_id" binding:"required,uuid"`
	TweetID        string    `json:"tweet_id" binding:"required"`
	Username       string    `json:"username" binding:"required"`
	Text           string    `json:"text" binding:"required"`
	Likes          int       `json:"likes" binding:"gte=0"`
	Retweets       int       `json:"retweets" binding:"gte=0"`
	Replies        int       `json:"replies" binding:"gte=0"`
	Quotes         int       `json:"quotes" binding:"gte=0"`
	PostedAt       time.Time `json:"posted_at"`
	FollowersCount *int      `json:"followers_count,omitempty" binding:"omitempty,gte=0"`
}

// HandleRunActiveCampaigns runs one tracking cycle for every active campaign
func (h *Handler) HandleRunActiveCampaigns(c *gin.Context) {
	summary, err := h.processor.RunActiveCampaigns(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HandleRunCampaign runs one tracking cycle for a single campaign
func (h *Handler) HandleRunCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	result, err := h.processor.RunCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleBackfillPost records a single post by hand
func (h *Handler) HandleBackfillPost(c *gin.Context) {
	ctx := c.Request.Context()

	var req BackfillPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	// binding already checked the format
	campaignID := uuid.MustParse(req.CampaignID)

	event, err := h.processor.BackfillPost(ctx, processor.BackfillPostParams{
		CampaignID: campaignID,
		TweetID:    req.TweetID,
		Username:   req.Username,
		Text:       req.Text,
		Metrics: scoring.Metrics{
			Likes:    req.Likes,
			Retweets: req.Retweets,
			Replies:  req.Replies,
			Quotes:   req.Quotes,
		},
		PostedAt:       req.PostedAt,
		FollowersCount: req.FollowersCount,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}
