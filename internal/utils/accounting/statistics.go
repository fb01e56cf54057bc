package accounting

import (
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateStatistics rolls assets up by category and status.
// Categories appear in domain.AssetCategories order; empty categories are omitted.
func AggregateStatistics(assets []domain.FixedAsset) domain.AssetStatistics {
	stats := domain.AssetStatistics{
		TotalCost:         decimal.Zero,
		TotalValue:        decimal.Zero,
		TotalDepreciation: decimal.Zero,
		ByStatus:          make(map[domain.AssetStatus]int),
		CategoryBreakdown: []domain.CategoryStatistics{},
	}

	byCategory := make(map[domain.AssetCategory]*domain.CategoryStatistics)
	for _, a := range assets {
		accumulated := a.AccumulatedDepreciation()

		stats.TotalAssets++
		stats.TotalCost = stats.TotalCost.Add(a.AcquisitionCost)
		stats.TotalValue = stats.TotalValue.Add(a.CurrentBookValue)
		stats.TotalDepreciation = stats.TotalDepreciation.Add(accumulated)
		stats.ByStatus[a.Status]++

		cs, ok := byCategory[a.Category]
		if !ok {
			cs = &domain.CategoryStatistics{
				Category:                a.Category,
				AcquisitionCost:         decimal.Zero,
				BookValue:               decimal.Zero,
				AccumulatedDepreciation: decimal.Zero,
			}
			byCategory[a.Category] = cs
		}
		cs.Count++
		cs.AcquisitionCost = cs.AcquisitionCost.Add(a.AcquisitionCost)
		cs.BookValue = cs.BookValue.Add(a.CurrentBookValue)
		cs.AccumulatedDepreciation = cs.AccumulatedDepreciation.Add(accumulated)
	}

	for _, c := range domain.AssetCategories {
		if cs, ok := byCategory[c]; ok {
			stats.CategoryBreakdown = append(stats.CategoryBreakdown, *cs)
			delete(byCategory, c)
		}
	}
	// Unknown categories (legacy rows) still count.
	for _, cs := range byCategory {
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, *cs)
	}
	return stats
}
