package domain

import "github.com/shopspring/decimal"

// AssetDepreciation is one depreciation entry for one asset in one fiscal year.
// At most one exists per (AssetID, FiscalYear); entries are never overwritten.
type AssetDepreciation struct {
	DepreciationID  string          `json:"depreciationID"`
	WorkplaceID     string          `json:"workplaceID"`
	AssetID         string          `json:"assetID"`
	FiscalYear      int             `json:"fiscalYear"`
	Amount          decimal.Decimal `json:"amount"`
	BookValueBefore decimal.Decimal `json:"bookValueBefore"`
	BookValueAfter  decimal.Decimal `json:"bookValueAfter"`
	IsPosted        bool            `json:"isPosted"`
	AuditFields
}
