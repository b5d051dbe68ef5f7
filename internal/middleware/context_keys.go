package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID set by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}

// GetUserRoleFromContext retrieves the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userRoleKey); v != nil {
		role, ok := v.(string)
		return role, ok
	}
	return "", false
}
