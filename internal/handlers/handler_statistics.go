package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
	"github.com/SscSPs/fixed_assets_app/internal/dto"
	"github.com/SscSPs/fixed_assets_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type statisticsHandler struct {
	statisticsService portssvc.StatisticsSvc
}

func newStatisticsHandler(ss portssvc.StatisticsSvc) *statisticsHandler {
	return &statisticsHandler{statisticsService: ss}
}

// getStatistics godoc
// @Summary Asset register statistics
// @Description Totals of cost, book value and accumulated depreciation with a per-category breakdown.
// @Tags fixed-assets
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param status query []string false "Statuses to include (default ACTIVE, FULLY_DEPRECIATED)" collectionFormat(multi)
// @Success 200 {object} domain.AssetStatistics
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/fixed-assets/statistics [get]
func (h *statisticsHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var params dto.StatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	stats, err := h.statisticsService.GetStatistics(c.Request.Context(), workplaceID, params.Status, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
