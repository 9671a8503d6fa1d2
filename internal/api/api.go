package api

import (
	aggregationHandler "hive-server/internal/aggregation/handler"
	authHandler "hive-server/internal/auth/handler"
	campaignHandler "hive-server/internal/campaign/handler"
	leaderboardHandler "hive-server/internal/leaderboard/handler"
	"hive-server/internal/ratelimit"
	trackingHandler "hive-server/internal/tracking/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RateLimits are requests per minute per caller
type RateLimits struct {
	Public int
	Admin  int
}

type API struct {
	router             *gin.RouterGroup
	authHandler        authHandler.Handler
	campaignHandler    campaignHandler.Handler
	leaderboardHandler leaderboardHandler.Handler
	trackingHandler    trackingHandler.Handler
	aggregationHandler aggregationHandler.Handler
	rateLimiter        *ratelimit.Service
	limits             RateLimits
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	campaignHandler campaignHandler.Handler,
	leaderboardHandler leaderboardHandler.Handler,
	trackingHandler trackingHandler.Handler,
	aggregationHandler aggregationHandler.Handler,
	rateLimiter *ratelimit.Service,
	limits RateLimits,
) API {
	return API{
		router:             router,
		authHandler:        authHandler,
		campaignHandler:    campaignHandler,
		leaderboardHandler: leaderboardHandler,
		trackingHandler:    trackingHandler,
		aggregationHandler: aggregationHandler,
		rateLimiter:        rateLimiter,
		limits:             limits,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	publicGroup := apiGroup.Group("", a.rateLimiter.Middleware("public", a.limits.Public))
	{
		publicGroup.GET("/campaigns", a.campaignHandler.HandleListCampaigns)
		publicGroup.GET("/campaigns/:campaign_id", a.campaignHandler.HandleGetCampaign)
		publicGroup.GET("/campaigns/:campaign_id/leaderboard", a.leaderboardHandler.HandleGetLeaderboard)
	}

	protectedGroup := apiGroup.Group("", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.POST("/campaigns/:campaign_id/join", a.campaignHandler.HandleJoinCampaign)
		protectedGroup.PUT("/campaigns/:campaign_id/wallet", a.campaignHandler.HandleUpdateWallet)
		protectedGroup.GET("/campaigns/:campaign_id/leaderboard/me", a.leaderboardHandler.HandleGetMyRank)
		protectedGroup.GET("/me/totals", a.aggregationHandler.HandleGetMyTotals)
	}

	adminGroup := apiGroup.Group("/admin",
		a.authHandler.HandleJWTMiddleware,
		a.authHandler.HandleRequireAdmin,
		a.rateLimiter.Middleware("admin", a.limits.Admin),
	)
	{
		adminGroup.POST("/campaigns", a.campaignHandler.HandleCreateCampaign)
		adminGroup.PUT("/campaigns/:campaign_id/status", a.campaignHandler.HandleUpdateCampaignStatus)

		adminGroup.POST("/tracking/run", a.trackingHandler.HandleRunActiveCampaigns)
		adminGroup.POST("/tracking/run/:campaign_id", a.trackingHandler.HandleRunCampaign)
		adminGroup.POST("/posts/backfill", a.trackingHandler.HandleBackfillPost)

		adminGroup.POST("/msp/backfill", a.aggregationHandler.HandleBackfillMSP)
		adminGroup.POST("/msp/recompute", a.aggregationHandler.HandleRecompute)
		adminGroup.POST("/msp/adjust", a.aggregationHandler.HandleAdjustMSP)
		adminGroup.POST("/awards", a.aggregationHandler.HandleApplyAward)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
