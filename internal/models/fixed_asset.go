package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset is the fixed_assets row.
type FixedAsset struct {
	AssetID            string              `db:"asset_id"`
	WorkplaceID        string              `db:"workplace_id"`
	AssetNumber        string              `db:"asset_number"`
	Name               string              `db:"name"`
	Description        string              `db:"description"`
	Category           string              `db:"category"`
	Location           string              `db:"location"`
	SerialNumber       string              `db:"serial_number"`
	Supplier           string              `db:"supplier"`
	AcquisitionDate    time.Time           `db:"acquisition_date"`
	AcquisitionCost    decimal.Decimal     `db:"acquisition_cost"`
	ResidualValue      decimal.Decimal     `db:"residual_value"`
	UsefulLifeYears    int                 `db:"useful_life_years"`
	DepreciationMethod string              `db:"depreciation_method"`
	DepreciationRate   decimal.Decimal     `db:"depreciation_rate"`
	CurrentBookValue   decimal.Decimal     `db:"current_book_value"`
	Status             string              `db:"status"`
	DisposalDate       *time.Time          `db:"disposal_date"` // Nullable
	SalePrice          decimal.NullDecimal `db:"sale_price"`
	GainLoss           decimal.NullDecimal `db:"gain_loss"`
	DisposalReason     string              `db:"disposal_reason"`
	DisposalNotes      string              `db:"disposal_notes"`
	AuditFields
}
