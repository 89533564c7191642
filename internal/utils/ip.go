package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// UnknownClient is the sentinel key used when no client address can be
// derived from the request.
const UnknownClient = "unknown"

// GetRealIP extracts the client IP from proxy headers, first match wins.
// This function is used consistently across the application so that rate
// limiting and logging agree on client identity.
func GetRealIP(c *gin.Context) string {
	// X-Forwarded-For can be a comma-separated list:
	// client, proxy1, proxy2, ... We want the leftmost (client) entry.
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	// Cloudflare sets its own header when fronting the origin
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}

	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	return UnknownClient
}
