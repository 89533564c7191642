package utils

import (
	"net/http"

	"github.com/halcyonworks/siteapi/internal/api/dto/common"
	"github.com/halcyonworks/siteapi/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the global logger
func LogError(err error, message string) {
	logger := logging.GetGlobalLogger()
	logger.Error("%s: %v", message, err)
}

// HandleServerError logs an error with request context and answers with a
// 500. The error itself is never exposed to the client; only the log
// carries it.
func HandleServerError(c *gin.Context, err error, errorCode, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		http.StatusInternalServerError,
		message,
		err,
	)

	c.JSON(http.StatusInternalServerError,
		common.NewServerErrorResponse(errorCode, message))
}
