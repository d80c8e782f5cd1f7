package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey    = "userID"
	ctxUserEmailKey = "userEmail"
)

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		// Store staff info into Gin context for later handlers.
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserEmailKey, claims.Email)

		c.Next()
	}
}

// GetUserID returns the authenticated staff user's ID or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(ctxUserIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserEmail returns the authenticated staff user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	if v, ok := c.Get(ctxUserEmailKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
