package handlers

import (
	"net/http"

	"agenthub-backend/internal/auth"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for team members
type MemberHandler struct {
	service service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// ListMembers handles GET /api/v1/members
// @Summary List team members
// @Description List an organization's members with profile display data; the target organization defaults to the caller's own
// @Tags members
// @Produce json
// @Param organizationId query string false "Target organization ID"
// @Success 200 {array} service.TeamMemberResponse "Successfully retrieved members"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Caller has no organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	members, err := h.service.List(c.Request.Context(), callerID, c.Query("organizationId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// UpdateMemberRole handles PUT /api/v1/members/:userId/role
// @Summary Update a member's role
// @Description Change a member's role between member and admin; the owner is immutable
// @Tags members
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.TeamMemberResponse "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "The owner's role cannot be changed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /members/{userId}/role [put]
func (h *MemberHandler) UpdateMemberRole(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	member, err := h.service.UpdateRole(c.Request.Context(), callerID, c.Param("userId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/v1/members/:userId
// @Summary Remove a team member
// @Description Remove a member from the organization; the owner cannot be removed and admins cannot remove themselves
// @Tags members
// @Produce json
// @Param userId path string true "User ID"
// @Success 204 "Member removed"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "The owner cannot be removed or caller targeted themselves"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /members/{userId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	if err := h.service.Remove(c.Request.Context(), callerID, c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
