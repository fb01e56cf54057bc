package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetCategory classifies a fixed asset. Each category carries a default annual depreciation rate.
type AssetCategory string

const (
	CategoryBuildings   AssetCategory = "BUILDINGS"
	CategoryMachinery   AssetCategory = "MACHINERY"
	CategoryVehicles    AssetCategory = "VEHICLES"
	CategoryFurniture   AssetCategory = "FURNITURE"
	CategoryITEquipment AssetCategory = "IT_EQUIPMENT"
	CategorySoftware    AssetCategory = "SOFTWARE"
	CategoryTools       AssetCategory = "TOOLS"
	CategoryOther       AssetCategory = "OTHER"
)

// AssetCategories lists every known category in display order.
var AssetCategories = []AssetCategory{
	CategoryBuildings,
	CategoryMachinery,
	CategoryVehicles,
	CategoryFurniture,
	CategoryITEquipment,
	CategorySoftware,
	CategoryTools,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c AssetCategory) IsValid() bool {
	for _, known := range AssetCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DepreciationMethod selects how the yearly amount is derived.
type DepreciationMethod string

const (
	MethodLinear           DepreciationMethod = "LINEAR"
	MethodDecliningBalance DepreciationMethod = "DECLINING_BALANCE"
)

// IsValid reports whether m is a supported method.
func (m DepreciationMethod) IsValid() bool {
	return m == MethodLinear || m == MethodDecliningBalance
}

// AssetStatus is the lifecycle state of a fixed asset.
type AssetStatus string

const (
	StatusActive           AssetStatus = "ACTIVE"
	StatusFullyDepreciated AssetStatus = "FULLY_DEPRECIATED"
	StatusDisposed         AssetStatus = "DISPOSED"
	StatusSold             AssetStatus = "SOLD"
)

// IsTerminal reports whether no further transition may leave this status.
func (s AssetStatus) IsTerminal() bool {
	return s == StatusDisposed || s == StatusSold
}

// IsValid reports whether s is a known status.
func (s AssetStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusFullyDepreciated, StatusDisposed, StatusSold:
		return true
	}
	return false
}

// FixedAsset is one capitalized item in a workplace's asset register.
//
// CurrentBookValue always equals AcquisitionCost minus the sum of the asset's
// depreciation entries. It never drops below ResidualValue while the asset is
// ACTIVE and is exactly zero once the asset is DISPOSED or SOLD.
type FixedAsset struct {
	AssetID            string             `json:"assetID"`
	WorkplaceID        string             `json:"workplaceID"`
	AssetNumber        string             `json:"assetNumber"` // e.g. ANL-00007, unique per workplace
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Category           AssetCategory      `json:"category"`
	Location           string             `json:"location"`
	SerialNumber       string             `json:"serialNumber"`
	Supplier           string             `json:"supplier"`
	AcquisitionDate    time.Time          `json:"acquisitionDate"`
	AcquisitionCost    decimal.Decimal    `json:"acquisitionCost"`
	ResidualValue      decimal.Decimal    `json:"residualValue"`
	UsefulLifeYears    int                `json:"usefulLifeYears"`
	DepreciationMethod DepreciationMethod `json:"depreciationMethod"`
	DepreciationRate   decimal.Decimal    `json:"depreciationRate"` // fraction, e.g. 0.25
	CurrentBookValue   decimal.Decimal    `json:"currentBookValue"`
	Status             AssetStatus        `json:"status"`

	// Disposal fields, set only once the asset reaches a terminal status.
	DisposalDate   *time.Time       `json:"disposalDate,omitempty"`
	SalePrice      *decimal.Decimal `json:"salePrice,omitempty"`
	GainLoss       *decimal.Decimal `json:"gainLoss,omitempty"`
	DisposalReason string           `json:"disposalReason,omitempty"`
	DisposalNotes  string           `json:"disposalNotes,omitempty"`

	AuditFields
}

// AcquisitionYear is the fiscal year the asset entered the register.
func (a FixedAsset) AcquisitionYear() int {
	return a.AcquisitionDate.Year()
}

// AccumulatedDepreciation is the total depreciated so far.
func (a FixedAsset) AccumulatedDepreciation() decimal.Decimal {
	return a.AcquisitionCost.Sub(a.CurrentBookValue)
}

// AssetFilter narrows a listing of a workplace's assets. Zero values mean "no restriction".
type AssetFilter struct {
	Statuses []AssetStatus
	Category AssetCategory
	Limit    int
	Offset   int
}

const (
	DefaultAssetListLimit = 20
	MaxAssetListLimit     = 100
)

// Normalize clamps the paging fields to the supported range.
func (f AssetFilter) Normalize() AssetFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultAssetListLimit
	} else if f.Limit > MaxAssetListLimit {
		f.Limit = MaxAssetListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
