package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio/internal/handlers"
	"portfolio/internal/middlewares"
)

type AdminRoutes struct {
	handler       *handlers.AdminHandler
	sessionSecret []byte
}

func NewAdminRoutes(handler *handlers.AdminHandler, sessionSecret []byte) *AdminRoutes {
	return &AdminRoutes{handler: handler, sessionSecret: sessionSecret}
}

func (r *AdminRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/admin/login", r.handler.LoginForm)
	router.POST("/admin/login", r.handler.Login)
	router.GET("/admin/logout", r.handler.Logout)

	admin := router.Group("/admin")
	admin.Use(middlewares.AdminRequired(r.sessionSecret)) // every mutation sits behind the gate
	{
		admin.GET("", r.handler.Dashboard)
		admin.GET("/project/new", r.handler.NewProjectForm)
		admin.POST("/project/new", r.handler.CreateProject)
		admin.GET("/project/:id/edit", r.handler.EditProjectForm)
		admin.POST("/project/:id/edit", r.handler.UpdateProject)
		admin.POST("/project/:id/delete", r.handler.DeleteProject)
	}
}
