package middleware

import (
	"runtime/debug"

	"appsearch-srv/pkg/log"
	"appsearch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into a 500 response.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Errorf(c.Request.Context(), "middleware.Recovery: panic on %s %s: %v\n%s",
				c.Request.Method, c.Request.URL.Path, rec, debug.Stack())

			response.PanicError(c, rec)
			c.Abort()
		}()
		c.Next()
	}
}
