package middleware

import "github.com/gin-gonic/gin"

const (
	// userIDKey stores the authenticated user's ID.
	userIDKey = contextKey("userID")
	// operatorIDKey stores the operator (tenant) the token is scoped to.
	operatorIDKey = contextKey("operatorID")
	// userRoleKey stores the authenticated user's role within the operator.
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetOperatorIDFromContext retrieves the token's operator scope from the Gin context.
func GetOperatorIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, operatorIDKey)
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin context.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userRoleKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	if v, exists := c.Get(string(key)); exists {
		if s, ok := v.(string); ok {
			return s, true
		}
		return "", false
	}
	// check the request context as well; auth middleware stores values there
	if v, ok := c.Request.Context().Value(key).(string); ok {
		return v, true
	}
	return "", false
}
