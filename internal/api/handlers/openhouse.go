package handlers

import (
	"net/http"

	"agenthub-backend/internal/auth"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OpenHouseHandler handles HTTP requests for open house sessions
type OpenHouseHandler struct {
	service service.OpenHouseServiceInterface
}

// NewOpenHouseHandler creates a new open house handler
func NewOpenHouseHandler(service service.OpenHouseServiceInterface) *OpenHouseHandler {
	return &OpenHouseHandler{service: service}
}

// StartOpenHouse handles POST /api/v1/open-houses
// @Summary Start an open house session
// @Description Start a new open house session run by the calling agent
// @Tags open-houses
// @Accept json
// @Produce json
// @Param session body service.StartOpenHouseRequest true "Session data"
// @Success 201 {object} service.OpenHouseResponse "Successfully started session"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Caller has no organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /open-houses [post]
func (h *OpenHouseHandler) StartOpenHouse(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	var req service.StartOpenHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	session, err := h.service.Start(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListOpenHouses handles GET /api/v1/open-houses
// @Summary List open house sessions
// @Description List the organization's open house sessions
// @Tags open-houses
// @Produce json
// @Success 200 {array} service.OpenHouseResponse "Successfully retrieved sessions"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Caller has no organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /open-houses [get]
func (h *OpenHouseHandler) ListOpenHouses(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	sessions, err := h.service.List(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// UpdateOpenHouse handles PATCH /api/v1/open-houses/:id
// @Summary Update an open house session
// @Description Update a running session's visitor count and notes
// @Tags open-houses
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param session body service.UpdateOpenHouseRequest true "Session updates"
// @Success 200 {object} service.OpenHouseResponse "Successfully updated session"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "Session has already ended"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /open-houses/{id} [patch]
func (h *OpenHouseHandler) UpdateOpenHouse(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	var req service.UpdateOpenHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	session, err := h.service.Update(c.Request.Context(), callerID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// EndOpenHouse handles POST /api/v1/open-houses/:id/end
// @Summary End an open house session
// @Description Close a session; ending an already ended session is a no-op
// @Tags open-houses
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} service.OpenHouseResponse "Session ended"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /open-houses/{id}/end [post]
func (h *OpenHouseHandler) EndOpenHouse(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	session, err := h.service.End(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
