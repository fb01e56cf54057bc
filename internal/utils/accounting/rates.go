package accounting

import (
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateTable maps an asset category to its default annual depreciation rate.
type RateTable map[domain.AssetCategory]decimal.Decimal

// DefaultRateTable returns the Swiss federal tax administration's maximum
// declining-balance rates for business assets.
func DefaultRateTable() RateTable {
	return RateTable{
		domain.CategoryBuildings:   decimal.RequireFromString("0.04"),
		domain.CategoryMachinery:   decimal.RequireFromString("0.30"),
		domain.CategoryVehicles:    decimal.RequireFromString("0.40"),
		domain.CategoryFurniture:   decimal.RequireFromString("0.25"),
		domain.CategoryITEquipment: decimal.RequireFromString("0.40"),
		domain.CategorySoftware:    decimal.RequireFromString("0.40"),
		domain.CategoryTools:       decimal.RequireFromString("0.45"),
		domain.CategoryOther:       decimal.RequireFromString("0.25"),
	}
}

// RateFor returns the default rate of a category, falling back to OTHER.
func (t RateTable) RateFor(category domain.AssetCategory) decimal.Decimal {
	if rate, ok := t[category]; ok {
		return rate
	}
	return t[domain.CategoryOther]
}

// WithOverrides returns a copy of t with the given categories replaced.
func (t RateTable) WithOverrides(overrides map[domain.AssetCategory]decimal.Decimal) RateTable {
	out := make(RateTable, len(t)+len(overrides))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
