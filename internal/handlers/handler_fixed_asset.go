package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
	"github.com/SscSPs/fixed_assets_app/internal/dto"
	"github.com/SscSPs/fixed_assets_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fixedAssetHandler handles HTTP requests for the asset register.
type fixedAssetHandler struct {
	assetService    portssvc.FixedAssetSvcFacade
	scheduleService portssvc.ScheduleSvc
}

func newFixedAssetHandler(as portssvc.FixedAssetSvcFacade, ss portssvc.ScheduleSvc) *fixedAssetHandler {
	return &fixedAssetHandler{
		assetService:    as,
		scheduleService: ss,
	}
}

// registerFixedAssetRoutes registers the asset routes under a workplace group.
func registerFixedAssetRoutes(rg *gin.RouterGroup, assetService portssvc.FixedAssetSvcFacade, scheduleService portssvc.ScheduleSvc, statisticsService portssvc.StatisticsSvc) {
	h := newFixedAssetHandler(assetService, scheduleService)
	sh := newStatisticsHandler(statisticsService)

	assets := rg.Group("/fixed-assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/statistics", sh.getStatistics)
		assets.GET("/:asset_id", h.getAsset)
		assets.PUT("/:asset_id", h.updateAsset)
		assets.POST("/:asset_id/dispose", h.disposeAsset)
		assets.GET("/:asset_id/schedule", h.getSchedule)
		assets.GET("/:asset_id/depreciations", h.listDepreciations)
	}
}

// createAsset godoc
// @Summary Register a fixed asset
// @Description Creates an ACTIVE asset with the next asset number of the workplace. The depreciation rate defaults to the category rate.
// @Tags fixed-assets
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param asset body dto.CreateFixedAssetRequest true "Asset details"
// @Success 201 {object} dto.FixedAssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/fixed-assets [post]
func (h *fixedAssetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var req dto.CreateFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("workplace_id", workplaceID), slog.String("user_id", userID))
	logger.Info("Received request to create fixed asset", slog.String("name", req.Name), slog.String("category", string(req.Category)))

	asset, err := h.assetService.CreateAsset(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create fixed asset")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFixedAssetResponse(asset))
}

// listAssets godoc
// @Summary List fixed assets
// @Tags fixed-assets
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param status query []string false "Filter by status" collectionFormat(multi)
// @Param category query string false "Filter by category"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListFixedAssetsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/fixed-assets [get]
func (h *fixedAssetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var params dto.ListFixedAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	filter := params.ToFilter().Normalize()
	assets, err := h.assetService.ListAssets(c.Request.Context(), workplaceID, filter, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fixed assets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFixedAssetsResponse(assets, filter.Limit, filter.Offset))
}

// getAsset godoc
// @Summary Get a fixed asset
// @Tags fixed-assets
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param asset_id path string true "Asset ID"
// @Success 200 {object} dto.FixedAssetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/fixed-assets/{asset_id} [get]
func (h *fixedAssetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	assetID := c.Param("asset_id")

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	asset, err := h.assetService.GetAsset(c.Request.Context(), workplaceID, assetID, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("asset_id", assetID)), err, "Failed to retrieve fixed asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToFixedAssetResponse(asset))
}

// updateAsset godoc
// @Summary Update descriptive fields of a fixed asset
// @Description Only descriptive fields can change. Disposed or sold assets cannot be updated.
// @Tags fixed-assets
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param asset_id path string true "Asset ID"
// @Param asset body dto.UpdateFixedAssetRequest true "Fields to update"
// @Success 200 {object} dto.FixedAssetResponse
// @Failure 400 {object} map[string]string "Invalid input or asset no longer changeable"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/fixed-assets/{asset_id} [put]
func (h *fixedAssetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	assetID := c.Param("asset_id")

	var req dto.UpdateFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), workplaceID, assetID, req, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("asset_id", assetID)), err, "Failed to update fixed asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToFixedAssetResponse(asset))
}

// disposeAsset godoc
// @Summary Dispose or sell a fixed asset
// @Description Without a sale price the asset becomes DISPOSED, with one SOLD. Gain or loss is the sale price minus the book value.
// @Tags fixed-assets
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param asset_id path string true "Asset ID"
// @Param disposal body dto.DisposeFixedAssetRequest true "Disposal details"
// @Success 200 {object} dto.FixedAssetResponse
// @Failure 400 {object} map[string]string "Invalid input or asset already disposed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/fixed-assets/{asset_id}/dispose [post]
func (h *fixedAssetHandler) disposeAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	assetID := c.Param("asset_id")

	var req dto.DisposeFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("asset_id", assetID), slog.String("user_id", userID))
	logger.Info("Received request to dispose fixed asset", slog.Bool("sale", req.SalePrice != nil))

	asset, err := h.assetService.DisposeAsset(c.Request.Context(), workplaceID, assetID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to dispose fixed asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToFixedAssetResponse(asset))
}

// getSchedule godoc
// @Summary Project the depreciation schedule of an asset
// @Description Rows of years already booked are COMPLETED and carry the actual amount.
// @Tags fixed-assets
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param asset_id path string true "Asset ID"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/fixed-assets/{asset_id}/schedule [get]
func (h *fixedAssetHandler) getSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	assetID := c.Param("asset_id")

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.GetSchedule(c.Request.Context(), workplaceID, assetID, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("asset_id", assetID)), err, "Failed to project depreciation schedule")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(schedule))
}

// listDepreciations godoc
// @Summary List the depreciation entries of an asset
// @Tags fixed-assets
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param asset_id path string true "Asset ID"
// @Success 200 {array} dto.DepreciationEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/fixed-assets/{asset_id}/depreciations [get]
func (h *fixedAssetHandler) listDepreciations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	assetID := c.Param("asset_id")

	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	entries, err := h.assetService.ListDepreciations(c.Request.Context(), workplaceID, assetID, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("asset_id", assetID)), err, "Failed to list depreciation entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToDepreciationEntryResponses(entries))
}
