package accounting_test

import (
	"testing"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateStatistics(t *testing.T) {
	assets := []domain.FixedAsset{
		{Category: domain.CategoryVehicles, Status: domain.StatusActive, AcquisitionCost: d("40000"), CurrentBookValue: d("24000")},
		{Category: domain.CategoryMachinery, Status: domain.StatusActive, AcquisitionCost: d("10000"), CurrentBookValue: d("7000")},
		{Category: domain.CategoryVehicles, Status: domain.StatusFullyDepreciated, AcquisitionCost: d("20000"), CurrentBookValue: d("1000")},
	}

	stats := accounting.AggregateStatistics(assets)

	assert.Equal(t, 3, stats.TotalAssets)
	assert.True(t, stats.TotalCost.Equal(d("70000")))
	assert.True(t, stats.TotalValue.Equal(d("32000")))
	assert.True(t, stats.TotalDepreciation.Equal(d("38000")))
	assert.Equal(t, 2, stats.ByStatus[domain.StatusActive])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusFullyDepreciated])

	require.Len(t, stats.CategoryBreakdown, 2)
	machinery := stats.CategoryBreakdown[0]
	vehicles := stats.CategoryBreakdown[1]
	assert.Equal(t, domain.CategoryMachinery, machinery.Category)
	assert.Equal(t, 1, machinery.Count)
	assert.Equal(t, domain.CategoryVehicles, vehicles.Category)
	assert.Equal(t, 2, vehicles.Count)
	assert.True(t, vehicles.AcquisitionCost.Equal(d("60000")))
	assert.True(t, vehicles.BookValue.Equal(d("25000")))
	assert.True(t, vehicles.AccumulatedDepreciation.Equal(d("35000")))
}

func TestAggregateStatistics_Empty(t *testing.T) {
	stats := accounting.AggregateStatistics(nil)
	assert.Zero(t, stats.TotalAssets)
	assert.True(t, stats.TotalValue.IsZero())
	assert.NotNil(t, stats.CategoryBreakdown)
	assert.Empty(t, stats.CategoryBreakdown)
}

func TestRateTable(t *testing.T) {
	table := accounting.DefaultRateTable()
	assert.True(t, table.RateFor(domain.CategoryMachinery).Equal(d("0.30")))
	assert.True(t, table.RateFor("UNKNOWN").Equal(table[domain.CategoryOther]))

	overridden := table.WithOverrides(map[domain.AssetCategory]decimal.Decimal{
		domain.CategoryMachinery: d("0.25"),
	})
	assert.True(t, overridden.RateFor(domain.CategoryMachinery).Equal(d("0.25")))
	assert.True(t, table.RateFor(domain.CategoryMachinery).Equal(d("0.30")), "original table must not change")
}
