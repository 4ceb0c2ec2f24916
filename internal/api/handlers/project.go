package handlers

import (
	"net/http"
	"strconv"

	"skillsync-backend/internal/auth"
	"skillsync-backend/internal/logger"
	"skillsync-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	projectService *service.ProjectService
	log            *logger.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		log:            logger.New(),
	}
}

// ListProjects lists projects with optional filters
// @Summary List projects
// @Description List projects newest first. Filters are optional; "All" means no filtering. A storage failure degrades to an empty list.
// @Tags projects
// @Accept json
// @Produce json
// @Param q query string false "Free-text search over title, short description and required skills"
// @Param category query string false "Category filter"
// @Param difficulty query string false "Difficulty filter"
// @Param status query string false "Status filter (Open or Closed)"
// @Param maxDuration query int false "Maximum duration in weeks (inclusive)"
// @Success 200 {array} service.ProjectResponse "Matching projects"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	req := &service.ListProjectsRequest{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Status:     c.Query("status"),
	}
	if raw := c.Query("maxDuration"); raw != "" {
		if weeks, err := strconv.Atoi(raw); err == nil && weeks > 0 {
			req.MaxDurationWeeks = &weeks
		}
	}

	projects, err := h.projectService.List(req)
	if err != nil {
		// Browsing stays available when the store is down
		h.log.WithError(err).Error("project listing failed, returning empty list")
		c.JSON(http.StatusOK, []service.ProjectResponse{})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject retrieves a single project
// @Summary Get project by ID
// @Description Get one project with its creator and collaborators
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid project ID"})
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject creates a new project owned by the caller
// @Summary Create a new project
// @Description Create a project. The caller becomes its creator and is added as an accepted member. required_skills accepts a JSON array or a comma-separated string.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Create(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// DeleteProject deletes a project and its memberships
// @Summary Delete a project
// @Description Delete a project by id. Only the creator may delete; membership rows go with it.
// @Tags projects
// @Accept json
// @Produce json
// @Param id query string true "Project ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Caller is not the project creator"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid project ID"})
		return
	}

	if err := h.projectService.Delete(id, callerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
