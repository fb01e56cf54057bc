package dto

import (
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted for acquisition and disposal dates.
const DateLayout = "2006-01-02"

// CreateFixedAssetRequest defines the data needed to register a new fixed asset.
type CreateFixedAssetRequest struct {
	Name               string                    `json:"name" binding:"required"`
	Description        string                    `json:"description"`
	Category           domain.AssetCategory      `json:"category" binding:"required,asset_category"`
	Location           string                    `json:"location"`
	SerialNumber       string                    `json:"serialNumber"`
	Supplier           string                    `json:"supplier"`
	AcquisitionDate    string                    `json:"acquisitionDate" binding:"required,datetime=2006-01-02"`
	AcquisitionCost    decimal.Decimal           `json:"acquisitionCost" binding:"decimal_gt0"`
	ResidualValue      decimal.Decimal           `json:"residualValue" binding:"decimal_gte0"`
	UsefulLifeYears    int                       `json:"usefulLifeYears" binding:"required,min=1,max=100"`
	DepreciationMethod domain.DepreciationMethod `json:"depreciationMethod" binding:"required,oneof=LINEAR DECLINING_BALANCE"`
	DepreciationRate   *decimal.Decimal          `json:"depreciationRate" binding:"omitempty,decimal_gte0"` // Optional: defaults from category
}

// UpdateFixedAssetRequest defines the descriptive fields that may change after registration.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateFixedAssetRequest struct {
	Name         *string               `json:"name" binding:"omitempty,min=1"`
	Description  *string               `json:"description"`
	Category     *domain.AssetCategory `json:"category" binding:"omitempty,asset_category"`
	Location     *string               `json:"location"`
	SerialNumber *string               `json:"serialNumber"`
	Supplier     *string               `json:"supplier"`
}

// DisposeFixedAssetRequest retires an asset. A sale price turns the disposal into a sale.
type DisposeFixedAssetRequest struct {
	DisposalDate string           `json:"disposalDate" binding:"omitempty,datetime=2006-01-02"` // Optional: defaults to today
	SalePrice    *decimal.Decimal `json:"salePrice" binding:"omitempty,decimal_gte0"`
	Reason       string           `json:"reason"`
	Notes        string           `json:"notes"`
}

// ListFixedAssetsParams defines query parameters for listing fixed assets.
type ListFixedAssetsParams struct {
	Status   []domain.AssetStatus `form:"status"`
	Category domain.AssetCategory `form:"category"`
	Limit    int                  `form:"limit,default=20"`
	Offset   int                  `form:"offset,default=0"`
}

// ToFilter converts the query parameters to a repository filter.
func (p ListFixedAssetsParams) ToFilter() domain.AssetFilter {
	return domain.AssetFilter{
		Statuses: p.Status,
		Category: p.Category,
		Limit:    p.Limit,
		Offset:   p.Offset,
	}
}

// FixedAssetResponse defines the data returned for a fixed asset.
type FixedAssetResponse struct {
	AssetID                 string                    `json:"assetID"`
	AssetNumber             string                    `json:"assetNumber"`
	Name                    string                    `json:"name"`
	Description             string                    `json:"description"`
	Category                domain.AssetCategory      `json:"category"`
	Location                string                    `json:"location"`
	SerialNumber            string                    `json:"serialNumber"`
	Supplier                string                    `json:"supplier"`
	AcquisitionDate         string                    `json:"acquisitionDate"`
	AcquisitionCost         decimal.Decimal           `json:"acquisitionCost"`
	ResidualValue           decimal.Decimal           `json:"residualValue"`
	UsefulLifeYears         int                       `json:"usefulLifeYears"`
	DepreciationMethod      domain.DepreciationMethod `json:"depreciationMethod"`
	DepreciationRate        decimal.Decimal           `json:"depreciationRate"`
	CurrentBookValue        decimal.Decimal           `json:"currentBookValue"`
	AccumulatedDepreciation decimal.Decimal           `json:"accumulatedDepreciation"`
	Status                  domain.AssetStatus        `json:"status"`
	DisposalDate            *string                   `json:"disposalDate,omitempty"`
	SalePrice               *decimal.Decimal          `json:"salePrice,omitempty"`
	GainLoss                *decimal.Decimal          `json:"gainLoss,omitempty"`
	DisposalReason          string                    `json:"disposalReason,omitempty"`
	DisposalNotes           string                    `json:"disposalNotes,omitempty"`
	CreatedAt               time.Time                 `json:"createdAt"`
	CreatedBy               string                    `json:"createdBy"`
	LastUpdatedAt           time.Time                 `json:"lastUpdatedAt"`
	LastUpdatedBy           string                    `json:"lastUpdatedBy"`
}

// ToFixedAssetResponse converts a domain.FixedAsset to its response DTO.
func ToFixedAssetResponse(a *domain.FixedAsset) FixedAssetResponse {
	res := FixedAssetResponse{
		AssetID:                 a.AssetID,
		AssetNumber:             a.AssetNumber,
		Name:                    a.Name,
		Description:             a.Description,
		Category:                a.Category,
		Location:                a.Location,
		SerialNumber:            a.SerialNumber,
		Supplier:                a.Supplier,
		AcquisitionDate:         a.AcquisitionDate.Format(DateLayout),
		AcquisitionCost:         a.AcquisitionCost,
		ResidualValue:           a.ResidualValue,
		UsefulLifeYears:         a.UsefulLifeYears,
		DepreciationMethod:      a.DepreciationMethod,
		DepreciationRate:        a.DepreciationRate,
		CurrentBookValue:        a.CurrentBookValue,
		AccumulatedDepreciation: a.AccumulatedDepreciation(),
		Status:                  a.Status,
		SalePrice:               a.SalePrice,
		GainLoss:                a.GainLoss,
		DisposalReason:          a.DisposalReason,
		DisposalNotes:           a.DisposalNotes,
		CreatedAt:               a.CreatedAt,
		CreatedBy:               a.CreatedBy,
		LastUpdatedAt:           a.LastUpdatedAt,
		LastUpdatedBy:           a.LastUpdatedBy,
	}
	if a.DisposalDate != nil {
		d := a.DisposalDate.Format(DateLayout)
		res.DisposalDate = &d
	}
	return res
}

// ListFixedAssetsResponse wraps a page of fixed assets.
type ListFixedAssetsResponse struct {
	Assets []FixedAssetResponse `json:"assets"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// ToListFixedAssetsResponse converts a slice of assets to the list response.
func ToListFixedAssetsResponse(assets []domain.FixedAsset, limit, offset int) ListFixedAssetsResponse {
	res := ListFixedAssetsResponse{
		Assets: make([]FixedAssetResponse, len(assets)),
		Limit:  limit,
		Offset: offset,
	}
	for i := range assets {
		res.Assets[i] = ToFixedAssetResponse(&assets[i])
	}
	return res
}
