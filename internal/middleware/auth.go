package middleware

import (
	"net/http"
	"strings"

	"sustainsports-be/internal/user"

	"github.com/gin-gonic/gin"
)

// Keys under which auth claims live in the gin context.
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
	IsAdminKey   = "isAdmin"
)

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware requires a valid JWT and loads its claims into the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(IsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// AdminMiddleware gates a route group to administrator accounts. Must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(IsAdminKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserEmail returns the authenticated user's email, the key the client-local
// stores are partitioned by.
func UserEmail(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}

// UserID returns the authenticated user's id.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
