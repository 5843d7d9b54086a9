package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = contextKey("userID")
	userRolesKey = contextKey("userRoles")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return UserIDFromCtx(c.Request.Context())
}

// UserIDFromCtx is GetUserIDFromContext for plain contexts.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserRolesFromContext returns the roles carried by the caller's token.
func GetUserRolesFromContext(c *gin.Context) []string {
	roles, _ := c.Request.Context().Value(userRolesKey).([]string)
	return roles
}
