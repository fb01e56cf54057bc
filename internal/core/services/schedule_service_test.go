package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/core/services"
	"github.com/SscSPs/fixed_assets_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_GetSchedule(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	assets := services.NewFixedAssetService(store, store, services.WithAssetClock(fixedClock))
	runner := services.NewDepreciationRunService(store, store, services.WithRunClock(fixedClock))
	schedules := services.NewScheduleService(store, store, services.WithScheduleClock(fixedClock))

	asset, err := assets.CreateAsset(ctx, testWorkplaceID, linearRequest("10000", "1000", 3, "2022-05-01"), testUserID)
	require.NoError(t, err)
	_, err = runner.RunDepreciation(ctx, testWorkplaceID, 2022, true, testUserID)
	require.NoError(t, err)

	schedule, err := schedules.GetSchedule(ctx, testWorkplaceID, asset.AssetID, testUserID)
	require.NoError(t, err)

	require.Len(t, schedule.Rows, 3)
	assert.True(t, schedule.TotalPlannedDepreciation.Equal(dec("9000")))
	assert.Equal(t, asset.AssetID, schedule.Asset.AssetID)

	wantStatus := []domain.ScheduleRowStatus{domain.RowCompleted, domain.RowPending, domain.RowPending}
	for i, row := range schedule.Rows {
		assert.Equal(t, i+1, row.Period)
		assert.Equal(t, 2022+i, row.FiscalYear)
		assert.True(t, row.ProjectedAmount.Equal(dec("3000")), "row %d: %s", i, row.ProjectedAmount)
		assert.Equal(t, wantStatus[i], row.Status, "row %d", i)
	}
	require.NotNil(t, schedule.Rows[0].ActualAmount)
	assert.True(t, schedule.Rows[0].ActualIsPosted)
	assert.Nil(t, schedule.Rows[1].ActualAmount)
	assert.True(t, schedule.Rows[2].BookValueEnd.Equal(dec("1000")))
}

func TestScheduleService_HidesOtherWorkplaces(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	assets := services.NewFixedAssetService(store, store)
	schedules := services.NewScheduleService(store, store)

	asset, err := assets.CreateAsset(ctx, testWorkplaceID, linearRequest("1000", "0", 2, "2024-01-01"), testUserID)
	require.NoError(t, err)

	_, err = schedules.GetSchedule(ctx, "wp-other", asset.AssetID, testUserID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = schedules.GetSchedule(ctx, testWorkplaceID, "missing", testUserID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
