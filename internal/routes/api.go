package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio/internal/handlers"
)

type APIRoutes struct {
	handler *handlers.APIHandler
}

func NewAPIRoutes(handler *handlers.APIHandler) *APIRoutes {
	return &APIRoutes{handler: handler}
}

func (r *APIRoutes) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(cors.Default()) // read-only public data, any origin may fetch it
	{
		api.GET("/health", r.handler.Health)
		api.GET("/projects", r.handler.ListProjects)
		api.GET("/projects/recent", r.handler.RecentProjects)
		api.GET("/projects/:id", r.handler.GetProject)
	}
}
