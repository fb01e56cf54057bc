package domain

import "github.com/shopspring/decimal"

// CategoryStatistics rolls up one category of the asset register.
type CategoryStatistics struct {
	Category                AssetCategory   `json:"category"`
	Count                   int             `json:"count"`
	AcquisitionCost         decimal.Decimal `json:"acquisitionCost"`
	BookValue               decimal.Decimal `json:"bookValue"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
}

// AssetStatistics is the register-wide rollup for a workplace.
type AssetStatistics struct {
	TotalAssets       int                  `json:"totalAssets"`
	TotalCost         decimal.Decimal      `json:"totalCost"`
	TotalValue        decimal.Decimal      `json:"totalValue"`        // sum of current book values
	TotalDepreciation decimal.Decimal      `json:"totalDepreciation"` // sum of accumulated depreciation
	ByStatus          map[AssetStatus]int  `json:"byStatus"`
	CategoryBreakdown []CategoryStatistics `json:"categoryBreakdown"`
}
