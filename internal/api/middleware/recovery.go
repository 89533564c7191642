package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/halcyonworks/siteapi/internal/api/dto/common"
	"github.com/halcyonworks/siteapi/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts a panic anywhere below it into a generic 500 with a
// timestamp. The stack trace goes to the log only, never to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger := logging.GetGlobalLogger()
				logger.Error("panic recovered: %v\n%s", r, debug.Stack())

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewServerErrorResponse(common.ErrInternalServer,
						"Something went wrong. Please try again later."))
			}
		}()

		c.Next()
	}
}
