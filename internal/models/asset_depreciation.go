package models

import "github.com/shopspring/decimal"

// AssetDepreciation is the asset_depreciations row.
type AssetDepreciation struct {
	DepreciationID  string          `db:"depreciation_id"`
	WorkplaceID     string          `db:"workplace_id"`
	AssetID         string          `db:"asset_id"`
	FiscalYear      int             `db:"fiscal_year"`
	Amount          decimal.Decimal `db:"amount"`
	BookValueBefore decimal.Decimal `db:"book_value_before"`
	BookValueAfter  decimal.Decimal `db:"book_value_after"`
	IsPosted        bool            `db:"is_posted"`
	AuditFields
}
