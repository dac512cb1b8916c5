package middleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/pkg/token"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and stores its subject and
// role in the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Fields(authHeader)
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		c.Set(common.ContextSubjectKey, claims.Subject)
		c.Set(common.ContextRoleKey, claims.Role)
		c.Next()
	}
}
