package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio/internal/middlewares"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
	"portfolio/internal/utils"
)

type AdminHandler struct {
	projectService    *services.ProjectService
	adminPasswordHash string
	sessionSecret     []byte
	logger            *zap.Logger
}

func NewAdminHandler(projectService *services.ProjectService, adminPasswordHash string, sessionSecret []byte, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		projectService:    projectService,
		adminPasswordHash: adminPasswordHash,
		sessionSecret:     sessionSecret,
		logger:            logger,
	}
}

// projectFormView backs the create/edit form template, both for fresh
// renders and for redisplay after a validation failure.
type projectFormView struct {
	Action      string
	ID          int64
	Title       string
	Description string
	Link        string
	Image       *string
}

// LoginForm handles GET /admin/login.
func (h *AdminHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Flashes": takeFlashes(c),
	})
}

// Login handles POST /admin/login. On a password match the session gets a
// fresh signed admin token.
func (h *AdminHandler) Login(c *gin.Context) {
	password := c.PostForm("password")

	if err := utils.VerifyPassword(h.adminPasswordHash, password); err != nil {
		h.logger.Warn("Failed admin login attempt", zap.String("client_ip", c.ClientIP()))
		addFlash(c, "danger", "Invalid password.")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	token, err := utils.NewAdminToken(h.sessionSecret)
	if err != nil {
		h.logger.Error("Failed to mint admin session token", zap.Error(err))
		addFlash(c, "danger", "Login error. Please try again.")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	session := sessions.Default(c)
	session.Set(middlewares.SessionTokenKey, token)
	if err := session.Save(); err != nil {
		h.logger.Error("Failed to save session", zap.Error(err))
		addFlash(c, "danger", "Login error. Please try again.")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	addFlash(c, "success", "Logged in successfully.")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout handles GET /admin/logout.
func (h *AdminHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middlewares.SessionTokenKey)
	_ = session.Save()

	addFlash(c, "info", "Logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}

// Dashboard handles GET /admin.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		addFlash(c, "danger", "Error loading projects. Please try again.")
		projects = nil
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Flashes":  takeFlashes(c),
		"Projects": projects,
	})
}

// NewProjectForm handles GET /admin/project/new.
func (h *AdminHandler) NewProjectForm(c *gin.Context) {
	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"Flashes": takeFlashes(c),
		"Form":    projectFormView{Action: "New"},
	})
}

// CreateProject handles POST /admin/project/new.
func (h *AdminHandler) CreateProject(c *gin.Context) {
	form, file := h.readProjectForm(c)

	_, err := h.projectService.CreateProject(c.Request.Context(), form, file)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			addFlash(c, "danger", "Title and description are required.")
			c.HTML(http.StatusOK, "project_form.html", gin.H{
				"Flashes": takeFlashes(c),
				"Form": projectFormView{
					Action:      "New",
					Title:       form.Title,
					Description: form.Description,
					Link:        form.Link,
				},
			})
			return
		}

		h.logger.Error("Failed to create project", zap.Error(err))
		addFlash(c, "danger", "Error creating project. Please try again.")
		c.Redirect(http.StatusSeeOther, "/admin/project/new")
		return
	}

	addFlash(c, "success", "Project added successfully.")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// EditProjectForm handles GET /admin/project/:id/edit.
func (h *AdminHandler) EditProjectForm(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			h.notFound(c)
			return
		}
		h.logger.Error("Failed to load project for edit", zap.Int64("id", id), zap.Error(err))
		addFlash(c, "danger", "Error loading project. Please try again.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	view := projectFormView{
		Action:      "Edit",
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Image:       project.Image,
	}
	if project.Link != nil {
		view.Link = *project.Link
	}

	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"Flashes": takeFlashes(c),
		"Form":    view,
	})
}

// UpdateProject handles POST /admin/project/:id/edit.
func (h *AdminHandler) UpdateProject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	form, file := h.readProjectForm(c)

	_, err := h.projectService.UpdateProject(c.Request.Context(), id, form, file)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProjectNotFound):
			h.notFound(c)
		case errors.Is(err, services.ErrValidation):
			addFlash(c, "danger", "Title and description are required.")
			c.HTML(http.StatusOK, "project_form.html", gin.H{
				"Flashes": takeFlashes(c),
				"Form": projectFormView{
					Action:      "Edit",
					ID:          id,
					Title:       form.Title,
					Description: form.Description,
					Link:        form.Link,
				},
			})
		default:
			h.logger.Error("Failed to update project", zap.Int64("id", id), zap.Error(err))
			addFlash(c, "danger", "Error updating project. Please try again.")
			c.Redirect(http.StatusSeeOther, "/admin")
		}
		return
	}

	addFlash(c, "success", "Project updated successfully.")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteProject handles POST /admin/project/:id/delete. The stored image
// file stays on disk.
func (h *AdminHandler) DeleteProject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			h.notFound(c)
			return
		}
		h.logger.Error("Failed to delete project", zap.Int64("id", id), zap.Error(err))
		addFlash(c, "danger", "Error deleting project. Please try again.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	addFlash(c, "info", "Project deleted successfully.")
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) readProjectForm(c *gin.Context) (models.ProjectForm, *multipart.FileHeader) {
	form := models.ProjectForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Link:        c.PostForm("link"),
	}

	// A missing file part is normal; the service treats nil as "no image".
	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}

	return form, file
}

func (h *AdminHandler) projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.notFound(c)
		return 0, false
	}
	return id, true
}

func (h *AdminHandler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Flashes": takeFlashes(c),
	})
}
