package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/repositories"
	"portfolio/internal/responses"
	"portfolio/internal/services"
)

// APIHandler exposes the public read-only JSON view over projects.
type APIHandler struct {
	projectService *services.ProjectService
}

func NewAPIHandler(projectService *services.ProjectService) *APIHandler {
	return &APIHandler{projectService: projectService}
}

// ListProjects handles GET /api/v1/projects
func (h *APIHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve projects")
		return
	}

	responses.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// RecentProjects handles GET /api/v1/projects/recent
func (h *APIHandler) RecentProjects(c *gin.Context) {
	projects, err := h.projectService.RecentProjects(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve projects")
		return
	}

	responses.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// GetProject handles GET /api/v1/projects/:id
func (h *APIHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		responses.Fail(c, http.StatusNotFound, nil, "Project not found")
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "Project not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve project")
		return
	}

	responses.Success(c, http.StatusOK, project, "Project retrieved successfully")
}

// Health handles GET /api/v1/health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
