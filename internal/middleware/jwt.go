package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"capshop/internal/auth" // Session verification

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionKey is the gin context key holding the *auth.Session
const SessionKey = "session"

// BearerToken extracts the token from an Authorization header, or ""
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization") // Get Authorization header
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// SessionAuthMiddleware validates the bearer token against the live sessions
func SessionAuthMiddleware(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := BearerToken(c)
		// Check if the Authorization header is present and properly formatted
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		session, err := a.Verify(c.Request.Context(), tokenStr)
		if err != nil {
			// Expired, logged out or forged
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.Set(SessionKey, session) // Store session in context
		c.Next()
	}
}

// CurrentSession returns the session set by SessionAuthMiddleware
func CurrentSession(c *gin.Context) (*auth.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*auth.Session)
	return session, ok
}
