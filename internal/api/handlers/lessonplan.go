package handlers

import (
	"net/http"

	"agenthub-backend/internal/auth"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LessonPlanHandler handles HTTP requests for lesson plans
type LessonPlanHandler struct {
	service service.LessonPlanServiceInterface
}

// NewLessonPlanHandler creates a new lesson plan handler
func NewLessonPlanHandler(service service.LessonPlanServiceInterface) *LessonPlanHandler {
	return &LessonPlanHandler{service: service}
}

// GenerateLessonPlan handles POST /api/v1/lesson-plans
// @Summary Generate a lesson plan
// @Description Generate an AI-authored training lesson for the calling agent
// @Tags lesson-plans
// @Accept json
// @Produce json
// @Param lessonPlan body service.GenerateLessonPlanRequest true "Lesson plan parameters"
// @Success 201 {object} service.LessonPlanResponse "Successfully generated lesson plan"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Caller has no organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /lesson-plans [post]
func (h *LessonPlanHandler) GenerateLessonPlan(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	var req service.GenerateLessonPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	plan, err := h.service.Generate(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListLessonPlans handles GET /api/v1/lesson-plans
// @Summary List lesson plans
// @Description List the caller's lesson plans, or the whole organization's with ?scope=organization
// @Tags lesson-plans
// @Produce json
// @Param scope query string false "Listing scope" Enums(own, organization)
// @Success 200 {array} service.LessonPlanResponse "Successfully retrieved lesson plans"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /lesson-plans [get]
func (h *LessonPlanHandler) ListLessonPlans(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	var plans []service.LessonPlanResponse
	var err error
	if c.Query("scope") == "organization" {
		plans, err = h.service.ListForOrganization(c.Request.Context(), callerID)
	} else {
		plans, err = h.service.List(c.Request.Context(), callerID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetLessonPlan handles GET /api/v1/lesson-plans/:id
// @Summary Get a lesson plan
// @Description Get one of the caller's lesson plans
// @Tags lesson-plans
// @Produce json
// @Param id path string true "Lesson plan ID"
// @Success 200 {object} service.LessonPlanResponse "Successfully retrieved lesson plan"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Lesson plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /lesson-plans/{id} [get]
func (h *LessonPlanHandler) GetLessonPlan(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	plan, err := h.service.Get(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeleteLessonPlan handles DELETE /api/v1/lesson-plans/:id
// @Summary Delete a lesson plan
// @Description Delete one of the caller's lesson plans
// @Tags lesson-plans
// @Produce json
// @Param id path string true "Lesson plan ID"
// @Success 204 "Lesson plan deleted"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /lesson-plans/{id} [delete]
func (h *LessonPlanHandler) DeleteLessonPlan(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	if err := h.service.Delete(c.Request.Context(), callerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
