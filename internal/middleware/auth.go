package middleware

import (
	"net/http"
	"strings"

	"fieldbook/internal/pkg/jwt"
	"fieldbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and places the authenticated
// principal (username, role) into the gin context.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Missing or malformed Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// Username returns the authenticated username from the context.
func Username(c *gin.Context) string { return c.GetString("username") }

// IsAdmin reports whether the authenticated principal has the admin role.
func IsAdmin(c *gin.Context) bool { return c.GetString("role") == "admin" }
