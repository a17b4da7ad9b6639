package handlers

import (
	"net/http"

	"agenthub-backend/internal/auth"
	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MarketStatsHandler handles HTTP requests for market statistics
type MarketStatsHandler struct {
	service service.MarketStatsServiceInterface
}

// NewMarketStatsHandler creates a new market stats handler
func NewMarketStatsHandler(service service.MarketStatsServiceInterface) *MarketStatsHandler {
	return &MarketStatsHandler{service: service}
}

// GetMarketStats handles GET /api/v1/market-stats/:areaCode
// @Summary Get market statistics for an area
// @Description Get cached market statistics, refreshing from the provider when stale
// @Tags market-stats
// @Produce json
// @Param areaCode path string true "Area code"
// @Success 200 {object} service.MarketStatsResponse "Successfully retrieved market stats"
// @Failure 400 {object} ErrorResponse "Invalid area code"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /market-stats/{areaCode} [get]
func (h *MarketStatsHandler) GetMarketStats(c *gin.Context) {
	callerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	stats, err := h.service.Get(c.Request.Context(), callerID, c.Param("areaCode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
