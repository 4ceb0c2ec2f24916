package handlers

import (
	"net/http"

	"skillsync-backend/internal/auth"
	"skillsync-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MembershipHandler handles HTTP requests for project memberships
type MembershipHandler struct {
	membershipService *service.MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// RemoveMemberRequest identifies the membership to remove
type RemoveMemberRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	UserID    string    `json:"user_id" binding:"required"`
}

// ListMembers lists a project's membership rows
// @Summary List project members
// @Description Get every membership row for a project, including undecided and rejected applications.
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} service.MembershipResponse "Membership rows"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid project ID"})
		return
	}

	members, err := h.membershipService.ListByProject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// JoinProject applies to join a project
// @Summary Apply to join a project
// @Description Submit or refresh the caller's application. Requires the guidelines acknowledgement; re-applying updates the application without resetting an earlier decision.
// @Tags memberships
// @Accept json
// @Produce json
// @Param application body service.ApplyRequest true "Application data"
// @Success 200 {object} service.MembershipResponse "Application stored"
// @Failure 400 {object} ErrorResponse "Invalid request body or guidelines not acknowledged"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/join [post]
func (h *MembershipHandler) JoinProject(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req service.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	membership, err := h.membershipService.Apply(callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// RespondToApplication records the creator's decision on an application
// @Summary Accept or reject an application
// @Description Record the project creator's decision. Accept stamps the acceptance time, reject clears it.
// @Tags memberships
// @Accept json
// @Produce json
// @Param projectId query string true "Project ID (UUID)"
// @Param userId query string true "Applicant user ID"
// @Param action query string true "Decision" Enums(accept, reject)
// @Success 200 {object} service.MembershipResponse "Decision recorded"
// @Failure 400 {object} ErrorResponse "Invalid parameters or action"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Caller is not the project creator"
// @Failure 404 {object} ErrorResponse "Project or membership not found"
// @Security BearerAuth
// @Router /projects/member [patch]
func (h *MembershipHandler) RespondToApplication(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	projectID, err := uuid.Parse(c.Query("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid project ID"})
		return
	}

	targetUserID := c.Query("userId")
	if targetUserID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "userId is required"})
		return
	}

	membership, err := h.membershipService.Respond(callerID, projectID, targetUserID, c.Query("action"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// RemoveMember removes a membership row
// @Summary Remove a project member
// @Description Remove the given user's membership. The creator may remove anyone; other callers may only remove themselves. Removing an absent membership succeeds.
// @Tags memberships
// @Accept json
// @Produce json
// @Param member body RemoveMemberRequest true "Membership to remove"
// @Success 200 {object} map[string]interface{} "Membership removed"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Caller may not remove this member"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/member [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.membershipService.Remove(callerID, req.ProjectID, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}
