package handler

import (
	"hive-server/internal/apierrors"
	"hive-server/internal/auth/processor"
	"hive-server/internal/observability"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by the JWT middleware
const (
	UserIDKey         = "User-ID"
	UserRoleKey       = "User-Role"
	UsernameKey       = "Username"
	FollowersCountKey = "Followers-Count"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		c.Abort()
		return
	}

	c.Set(UserIDKey, claims.Subject)
	c.Set(UserRoleKey, claims.Role)
	c.Set(UsernameKey, claims.Username)
	if claims.FollowersCount != nil {
		c.Set(FollowersCountKey, *claims.FollowersCount)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: claims.Subject})
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// HandleRequireAdmin must run after HandleJWTMiddleware
func (h *Handler) HandleRequireAdmin(c *gin.Context) {
	if c.GetString(UserRoleKey) != processor.RoleAdmin {
		h.logger.Warn(c.Request.Context(), "non-admin request to admin route")
		apierrors.RespondWithError(c, apierrors.Forbidden("Admin access required"))
		c.Abort()
		return
	}
	c.Next()
}
