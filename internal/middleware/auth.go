package middleware

import (
	"strings"

	"appsearch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// InternalAuth validates the internal key from the Authorization header (Bearer <key> or raw key).
// If internalKey is empty, all requests are rejected with 401.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if m.internalKey == "" || tokenString != m.internalKey {
			m.l.Warnf(c.Request.Context(), "middleware.InternalAuth: rejected %s %s", c.Request.Method, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
