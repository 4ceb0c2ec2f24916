package handlers

import (
	"net/http"

	"skillsync-backend/internal/auth"
	"skillsync-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SkillHandler handles HTTP requests for user skills
type SkillHandler struct {
	skillService *service.SkillService
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillService *service.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// ListSkills lists the caller's skills
// @Summary List own skills
// @Description Get all skills on the caller's profile
// @Tags skills
// @Accept json
// @Produce json
// @Success 200 {array} service.SkillResponse "Skills"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /user-skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	skills, err := h.skillService.List(callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// CreateSkill adds a skill to the caller's profile
// @Summary Add a skill
// @Description Add a skill to the caller's profile. All fields are required; level and type come from fixed sets.
// @Tags skills
// @Accept json
// @Produce json
// @Param skill body service.CreateSkillRequest true "Skill data"
// @Success 201 {object} service.SkillResponse "Successfully created skill"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /user-skills [post]
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req service.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	skill, err := h.skillService.Create(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// DeleteSkill removes a skill from the caller's profile
// @Summary Delete a skill
// @Description Delete one of the caller's skills by id
// @Tags skills
// @Accept json
// @Produce json
// @Param id query string true "Skill ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted skill"
// @Failure 400 {object} ErrorResponse "Invalid skill ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Caller does not own this skill"
// @Failure 404 {object} ErrorResponse "Skill not found"
// @Security BearerAuth
// @Router /user-skills [delete]
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid skill ID"})
		return
	}

	if err := h.skillService.Delete(id, callerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
