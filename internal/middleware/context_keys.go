package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the context.
const userIDKey = contextKey("userID")

// sessionIDKey is the key used to store the authenticated session's ID in the context.
const sessionIDKey = contextKey("sessionID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(userIDKey); v != nil {
			if userID, ok := v.(string); ok {
				return userID, true
			}
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetSessionIDFromContext retrieves the authenticated session ID from the Gin context.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionIDVal, exists := c.Get(string(sessionIDKey))
	if !exists {
		if v := c.Request.Context().Value(sessionIDKey); v != nil {
			if sessionID, ok := v.(string); ok {
				return sessionID, true
			}
		}
		return "", false
	}

	sessionID, ok := sessionIDVal.(string)
	if !ok {
		return "", false
	}

	return sessionID, true
}
