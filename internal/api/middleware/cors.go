package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// productionOrigins are always allowed to call the API.
var productionOrigins = []string{
	"https://halcyonworks.com",
	"https://www.halcyonworks.com",
}

// developmentOrigins are additionally allowed outside production.
var developmentOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8080",
	"http://127.0.0.1:3000",
}

// CORS returns an allow-list CORS middleware. Origins outside the list get
// no Access-Control-Allow-Origin header; disallowed preflights are answered
// with 403 and no body.
func CORS(extraOrigin string, development bool) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, origin := range productionOrigins {
		allowed[origin] = true
	}
	if extraOrigin != "" {
		allowed[extraOrigin] = true
	}
	if development {
		for _, origin := range developmentOrigins {
			allowed[origin] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		}

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			if origin != "" && !allowed[origin] {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
