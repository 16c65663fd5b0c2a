package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio/internal/services"
)

type SiteHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

func NewSiteHandler(projectService *services.ProjectService, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// Home handles GET / with the six most recent projects.
func (h *SiteHandler) Home(c *gin.Context) {
	projects, err := h.projectService.RecentProjects(c.Request.Context())
	if err != nil {
		// Degraded view: the page renders with no projects.
		projects = nil
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Flashes":  takeFlashes(c),
		"Projects": projects,
	})
}

// About handles GET /about.
func (h *SiteHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Flashes": takeFlashes(c),
	})
}

// Projects handles GET /projects with the full listing.
func (h *SiteHandler) Projects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		addFlash(c, "danger", "Error loading projects. Please try again later.")
		projects = nil
	}

	c.HTML(http.StatusOK, "projects.html", gin.H{
		"Flashes":  takeFlashes(c),
		"Projects": projects,
	})
}

// ContactForm handles GET /contact.
func (h *SiteHandler) ContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Flashes": takeFlashes(c),
		"Name":    "",
		"Email":   "",
		"Message": "",
	})
}

// ContactSubmit handles POST /contact. Messages are logged, not persisted.
func (h *SiteHandler) ContactSubmit(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	if name == "" || email == "" || message == "" {
		addFlash(c, "danger", "All fields are required.")
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"Flashes": takeFlashes(c),
			"Name":    name,
			"Email":   email,
			"Message": message,
		})
		return
	}

	h.logger.Info("Contact message received",
		zap.String("name", name),
		zap.String("email", email),
		zap.String("message", message),
	)

	addFlash(c, "success", "Message received! Thank you for contacting us.")
	c.Redirect(http.StatusSeeOther, "/contact")
}
