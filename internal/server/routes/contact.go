package routes

import (
	"github.com/halcyonworks/siteapi/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes.
// OPTIONS preflights are answered by the CORS middleware before routing.
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler) {
	group := router.Group("/contact")
	{
		group.POST("", contact.Submit)
		group.GET("", contact.Status)
		group.PUT("", contact.MethodNotAllowed)
		group.DELETE("", contact.MethodNotAllowed)
		group.PATCH("", contact.MethodNotAllowed)
	}
}
