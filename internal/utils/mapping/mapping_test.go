package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedAssetMapping_NullableDisposalFields(t *testing.T) {
	active := domain.FixedAsset{
		AssetID:          "a-1",
		AcquisitionDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AcquisitionCost:  decimal.NewFromInt(1000),
		CurrentBookValue: decimal.NewFromInt(1000),
		Status:           domain.StatusActive,
	}
	model := ToModelFixedAsset(active)
	assert.False(t, model.SalePrice.Valid)
	assert.False(t, model.GainLoss.Valid)
	assert.Nil(t, model.DisposalDate)

	back := ToDomainFixedAsset(model)
	assert.Nil(t, back.SalePrice)
	assert.Nil(t, back.GainLoss)
	assert.Equal(t, domain.StatusActive, back.Status)

	sale := decimal.NewFromInt(1200)
	gain := decimal.NewFromInt(200)
	disposed := active
	disposed.Status = domain.StatusSold
	disposed.SalePrice = &sale
	disposed.GainLoss = &gain

	back = ToDomainFixedAsset(ToModelFixedAsset(disposed))
	require.NotNil(t, back.SalePrice)
	require.NotNil(t, back.GainLoss)
	assert.True(t, back.SalePrice.Equal(sale))
	assert.True(t, back.GainLoss.Equal(gain))
	assert.Equal(t, domain.StatusSold, back.Status)
}
