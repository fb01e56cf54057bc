package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAsset(t *testing.T, s *memory.Store, id, number string, status domain.AssetStatus, category domain.AssetCategory) domain.FixedAsset {
	t.Helper()
	asset := domain.FixedAsset{
		AssetID:          id,
		WorkplaceID:      "wp-1",
		AssetNumber:      number,
		Category:         category,
		AcquisitionDate:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		AcquisitionCost:  decimal.NewFromInt(1000),
		CurrentBookValue: decimal.NewFromInt(1000),
		Status:           status,
	}
	require.NoError(t, s.SaveAsset(context.Background(), asset))
	return asset
}

func TestInsertDepreciationIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	asset := seedAsset(t, s, "a1", "ANL-00001", domain.StatusActive, domain.CategoryTools)

	entry := domain.AssetDepreciation{
		DepreciationID:  "d1",
		WorkplaceID:     "wp-1",
		AssetID:         asset.AssetID,
		FiscalYear:      2024,
		Amount:          decimal.NewFromInt(450),
		BookValueBefore: decimal.NewFromInt(1000),
		BookValueAfter:  decimal.NewFromInt(550),
	}
	require.NoError(t, s.InsertDepreciationIfAbsent(ctx, entry, domain.StatusActive))

	stored, err := s.FindAssetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentBookValue.Equal(decimal.NewFromInt(550)))

	// Same year again is a duplicate, even though the book value no longer matches.
	err = s.InsertDepreciationIfAbsent(ctx, entry, domain.StatusActive)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// A stale pre-state for another year is a conflict.
	stale := entry
	stale.FiscalYear = 2025
	err = s.InsertDepreciationIfAbsent(ctx, stale, domain.StatusActive)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	count, err := s.CountDepreciationsByAsset(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = s.FindDepreciationByAssetAndYear(ctx, asset.AssetID, 2025)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMarkYearPosted_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	asset := seedAsset(t, s, "a1", "ANL-00001", domain.StatusActive, domain.CategoryTools)
	require.NoError(t, s.InsertDepreciationIfAbsent(ctx, domain.AssetDepreciation{
		DepreciationID:  "d1",
		WorkplaceID:     "wp-1",
		AssetID:         asset.AssetID,
		FiscalYear:      2024,
		Amount:          decimal.NewFromInt(100),
		BookValueBefore: decimal.NewFromInt(1000),
		BookValueAfter:  decimal.NewFromInt(900),
	}, domain.StatusActive))

	n, err := s.MarkYearPosted(ctx, "wp-1", 2024, "u1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.MarkYearPosted(ctx, "wp-1", 2024, "u1", time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListAssets_FilterAndPage(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedAsset(t, s, "a3", "ANL-00003", domain.StatusActive, domain.CategoryTools)
	seedAsset(t, s, "a1", "ANL-00001", domain.StatusActive, domain.CategoryTools)
	seedAsset(t, s, "a2", "ANL-00002", domain.StatusSold, domain.CategoryVehicles)

	all, err := s.ListAssets(ctx, "wp-1", domain.AssetFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ANL-00001", all[0].AssetNumber)

	active, err := s.ListAssets(ctx, "wp-1", domain.AssetFilter{Statuses: []domain.AssetStatus{domain.StatusActive}, Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a3", active[0].AssetID)

	vehicles, err := s.ListAssets(ctx, "wp-1", domain.AssetFilter{Category: domain.CategoryVehicles})
	require.NoError(t, err)
	require.Len(t, vehicles, 1)

	none, err := s.ListAssets(ctx, "wp-1", domain.AssetFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNextAssetNumber_IsSequentialUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	const workers = 50
	var wg sync.WaitGroup
	seen := make(chan int64, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := s.NextAssetNumber(ctx, "wp-1")
			assert.NoError(t, err)
			seen <- n
		}()
	}
	wg.Wait()
	close(seen)

	got := make(map[int64]bool)
	for n := range seen {
		assert.False(t, got[n], fmt.Sprintf("number %d handed out twice", n))
		got[n] = true
	}
	assert.Len(t, got, workers)
	assert.True(t, got[1] && got[workers])
}

func TestUpdateAssetLocked_MutateErrorLeavesAssetUntouched(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedAsset(t, s, "a1", "ANL-00001", domain.StatusActive, domain.CategoryTools)

	_, err := s.UpdateAssetLocked(ctx, "a1", func(a *domain.FixedAsset) error {
		a.Name = "changed"
		return apperrors.ErrInvalidState
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	stored, err := s.FindAssetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, stored.Name)

	_, err = s.UpdateAssetLocked(ctx, "missing", func(*domain.FixedAsset) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
