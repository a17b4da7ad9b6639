package handlers

import (
	"net/http"

	"agenthub-backend/internal/auth"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for invitations
type InvitationHandler struct {
	service service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(service service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// InviteTeamMember handles POST /api/v1/invitations
// @Summary Invite a team member
// @Description Create a pending invitation and email the invitee a redemption link
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.InviteTeamMemberRequest true "Invitation data"
// @Success 201 {object} service.InvitationResponse "Successfully created invitation"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 409 {object} ErrorResponse "A pending invitation already exists for this email"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invitations [post]
func (h *InvitationHandler) InviteTeamMember(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	var req service.InviteTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	invitation, err := h.service.Invite(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invitation)
}

// ListPendingInvitations handles GET /api/v1/invitations
// @Summary List pending invitations
// @Description List the organization's pending, non-expired invitations
// @Tags invitations
// @Produce json
// @Success 200 {array} service.InvitationResponse "Successfully retrieved invitations"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invitations [get]
func (h *InvitationHandler) ListPendingInvitations(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	invitations, err := h.service.ListPending(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// CancelInvitation handles DELETE /api/v1/invitations/:id
// @Summary Cancel an invitation
// @Description Cancel a pending invitation; cancelling twice is a no-op
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 204 "Invitation cancelled"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Failure 409 {object} ErrorResponse "Invitation already accepted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invitations/{id} [delete]
func (h *InvitationHandler) CancelInvitation(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	if err := h.service.Cancel(c.Request.Context(), callerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AcceptInvitation handles POST /api/v1/invitations/accept
// @Summary Accept an invitation
// @Description Redeem an invitation link and join the organization
// @Tags invitations
// @Accept json
// @Produce json
// @Param acceptance body service.AcceptInvitationRequest true "Invitation redemption data"
// @Success 200 {object} service.InvitationResponse "Invitation accepted"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Invitation not found or token mismatch"
// @Failure 409 {object} ErrorResponse "Invitation already used or caller already in an organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invitations/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	var req service.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	invitation, err := h.service.Accept(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitation)
}
