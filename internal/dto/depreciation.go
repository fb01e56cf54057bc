package dto

import (
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunDepreciationRequest triggers the yearly batch run for a workplace.
type RunDepreciationRequest struct {
	FiscalYear      int  `json:"fiscalYear" binding:"required,min=1900,max=9999"`
	PostImmediately bool `json:"postImmediately"`
}

// DepreciationEntryResponse defines the data returned for a booked depreciation entry.
type DepreciationEntryResponse struct {
	DepreciationID  string          `json:"depreciationID"`
	AssetID         string          `json:"assetID"`
	FiscalYear      int             `json:"fiscalYear"`
	Amount          decimal.Decimal `json:"amount"`
	BookValueBefore decimal.Decimal `json:"bookValueBefore"`
	BookValueAfter  decimal.Decimal `json:"bookValueAfter"`
	IsPosted        bool            `json:"isPosted"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ToDepreciationEntryResponses converts depreciation entries to their response DTOs.
func ToDepreciationEntryResponses(entries []domain.AssetDepreciation) []DepreciationEntryResponse {
	res := make([]DepreciationEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = DepreciationEntryResponse{
			DepreciationID:  e.DepreciationID,
			AssetID:         e.AssetID,
			FiscalYear:      e.FiscalYear,
			Amount:          e.Amount,
			BookValueBefore: e.BookValueBefore,
			BookValueAfter:  e.BookValueAfter,
			IsPosted:        e.IsPosted,
			CreatedAt:       e.CreatedAt,
			CreatedBy:       e.CreatedBy,
		}
	}
	return res
}

// PostDepreciationYearResponse reports how many draft entries were posted.
type PostDepreciationYearResponse struct {
	FiscalYear    int `json:"fiscalYear"`
	EntriesPosted int `json:"entriesPosted"`
}

// ScheduleResponse wraps an asset's projected depreciation plan.
type ScheduleResponse struct {
	Asset                    FixedAssetResponse   `json:"asset"`
	Rows                     []domain.ScheduleRow `json:"rows"`
	TotalPlannedDepreciation decimal.Decimal      `json:"totalPlannedDepreciation"`
}

// ToScheduleResponse converts a domain schedule to its response DTO.
func ToScheduleResponse(s *domain.DepreciationSchedule) ScheduleResponse {
	return ScheduleResponse{
		Asset:                    ToFixedAssetResponse(&s.Asset),
		Rows:                     s.Rows,
		TotalPlannedDepreciation: s.TotalPlannedDepreciation,
	}
}

// StatisticsParams defines query parameters for the statistics endpoint.
type StatisticsParams struct {
	Status []domain.AssetStatus `form:"status"` // Optional: defaults to ACTIVE and FULLY_DEPRECIATED
}
