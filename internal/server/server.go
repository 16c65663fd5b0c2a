package server

import (
	"encoding/gob"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio/internal/config"
	"portfolio/internal/handlers"
	"portfolio/internal/middlewares"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/routes"
	"portfolio/internal/services"
)

// NewServer wires the application together and returns the configured
// HTTP server.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, logger *zap.Logger) *http.Server {
	// Flashes travel through the cookie session, which encodes with gob.
	gob.Register(models.Flash{})

	// Dependency injection
	projectRepo := repositories.NewProjectRepository(pool, logger)
	imageStore := services.NewDiskImageStore(cfg.UploadDir, cfg.AllowedExtensions, logger)
	projectService := services.NewProjectService(projectRepo, imageStore, logger)

	siteHandler := handlers.NewSiteHandler(projectService, logger)
	adminHandler := handlers.NewAdminHandler(projectService, cfg.AdminPasswordHash, []byte(cfg.SessionSecret), logger)
	apiHandler := handlers.NewAPIHandler(projectService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(logger))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(time.Hour * 12 / time.Second),
	})
	router.Use(sessions.Sessions("portfolio_session", store))

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(router, siteHandler, adminHandler, apiHandler, []byte(cfg.SessionSecret))

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
