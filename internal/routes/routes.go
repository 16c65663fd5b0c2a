package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	siteHandler *handlers.SiteHandler,
	adminHandler *handlers.AdminHandler,
	apiHandler *handlers.APIHandler,
	sessionSecret []byte,
) {
	siteRoutes := NewSiteRoutes(siteHandler)
	siteRoutes.RegisterRoutes(router)

	adminRoutes := NewAdminRoutes(adminHandler, sessionSecret)
	adminRoutes.RegisterRoutes(router)

	apiRoutes := NewAPIRoutes(apiHandler)
	apiRoutes.RegisterRoutes(router)
}
