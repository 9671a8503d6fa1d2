package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"strconv"

	"hive-server/internal/apierrors"
	"hive-server/internal/leaderboard"
	"hive-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaderboardReader is the read side of the leaderboard processor
type LeaderboardReader interface {
	GetLeaderboard(ctx context.Context, campaignID uuid.UUID, limit, offset int) (leaderboard.Page, error)
	GetParticipantRank(ctx context.Context, campaignID, userID uuid.UUID) (leaderboard.Entry, error)
}

type Handler struct {
	processor LeaderboardReader
	logger    *observability.Logger
}

func New(processor LeaderboardReader, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetLeaderboard returns one page of a campaign leaderboard
func (h *Handler) HandleGetLeaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	limit := queryInt(c, "limit", leaderboard.DefaultPageSize)
	offset := queryInt(c, "offset", 0)

	page, err := h.processor.GetLeaderboard(ctx, campaignID, limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// HandleGetMyRank returns the authenticated user's entry in a campaign
func (h *Handler) HandleGetMyRank(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return
	}

	rawUserID, exists := c.Get("User-ID")
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return
	}
	userID, err := uuid.Parse(rawUserID.(string))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "user_id", Value: userID.String()},
	)

	entry, err := h.processor.GetParticipantRank(ctx, campaignID, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// queryInt reads an integer query parameter, falling back to def when it is
// missing or malformed. Range clamping happens in the processor.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
