package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio/internal/handlers"
)

type SiteRoutes struct {
	handler *handlers.SiteHandler
}

func NewSiteRoutes(handler *handlers.SiteHandler) *SiteRoutes {
	return &SiteRoutes{handler: handler}
}

func (r *SiteRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/", r.handler.Home)
	router.GET("/about", r.handler.About)
	router.GET("/projects", r.handler.Projects)
	router.GET("/contact", r.handler.ContactForm)
	router.POST("/contact", r.handler.ContactSubmit)
}
