package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
	"github.com/SscSPs/fixed_assets_app/internal/dto"
	"github.com/SscSPs/fixed_assets_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// depreciationHandler handles the yearly batch run.
type depreciationHandler struct {
	runService portssvc.DepreciationRunSvc
}

func newDepreciationHandler(rs portssvc.DepreciationRunSvc) *depreciationHandler {
	return &depreciationHandler{runService: rs}
}

func registerDepreciationRoutes(rg *gin.RouterGroup, runService portssvc.DepreciationRunSvc) {
	h := newDepreciationHandler(runService)

	runs := rg.Group("/depreciation/runs")
	{
		runs.POST("", h.runDepreciation)
		runs.POST("/:fiscal_year/post", h.postDepreciationYear)
	}
}

// runDepreciation godoc
// @Summary Run the yearly depreciation
// @Description Books one entry per eligible asset. Re-running a year skips assets already booked; failures of single assets are reported per asset.
// @Tags depreciation
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param run body dto.RunDepreciationRequest true "Fiscal year"
// @Success 200 {object} domain.DepreciationRun
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Run for the year already in progress"
// @Failure 500 {object} map[string]string "Failed to run depreciation"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/depreciation/runs [post]
func (h *depreciationHandler) runDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var req dto.RunDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("workplace_id", workplaceID), slog.Int("fiscal_year", req.FiscalYear))
	logger.Info("Received request to run depreciation", slog.Bool("post_immediately", req.PostImmediately))

	run, err := h.runService.RunDepreciation(c.Request.Context(), workplaceID, req.FiscalYear, req.PostImmediately, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to run depreciation")
		return
	}
	c.JSON(http.StatusOK, run)
}

// postDepreciationYear godoc
// @Summary Post the draft depreciation entries of a year
// @Tags depreciation
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param fiscal_year path int true "Fiscal year"
// @Success 200 {object} dto.PostDepreciationYearResponse
// @Failure 400 {object} map[string]string "Invalid fiscal year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (admin only)"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/depreciation/runs/{fiscal_year}/post [post]
func (h *depreciationHandler) postDepreciationYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	fiscalYear, err := strconv.Atoi(c.Param("fiscal_year"))
	if err != nil {
		logger.Warn("Invalid fiscal year in path", slog.String("fiscal_year", c.Param("fiscal_year")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fiscal year must be a number"})
		return
	}

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	posted, err := h.runService.PostDepreciationYear(c.Request.Context(), workplaceID, fiscalYear, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post depreciation entries")
		return
	}
	c.JSON(http.StatusOK, dto.PostDepreciationYearResponse{FiscalYear: fiscalYear, EntriesPosted: posted})
}
