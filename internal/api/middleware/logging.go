package middleware

import (
	"time"

	"github.com/halcyonworks/siteapi/internal/logging"
	"github.com/halcyonworks/siteapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request through the global logger in the
// colored one-line format.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		logger := logging.GetGlobalLogger()
		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			latency.String(),
		)
	}
}
