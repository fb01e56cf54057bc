package services

import (
	"context"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
)

// DepreciationRunSvc defines the yearly batch operations
type DepreciationRunSvc interface {
	// RunDepreciation books one fiscal year of depreciation for every eligible ACTIVE asset.
	// Per-asset failures are reported in the result, never returned as the error.
	RunDepreciation(ctx context.Context, workplaceID string, fiscalYear int, postImmediately bool, userID string) (*domain.DepreciationRun, error)

	// PostDepreciationYear marks the draft entries of a fiscal year as posted.
	PostDepreciationYear(ctx context.Context, workplaceID string, fiscalYear int, userID string) (int, error)
}

// ScheduleSvc defines the schedule projection
type ScheduleSvc interface {
	// GetSchedule projects the asset's plan and matches it against the entries booked so far.
	GetSchedule(ctx context.Context, workplaceID string, assetID string, userID string) (*domain.DepreciationSchedule, error)
}

// StatisticsSvc defines the register roll-up
type StatisticsSvc interface {
	// GetStatistics aggregates the workplace's assets in the given statuses.
	// An empty status list means ACTIVE and FULLY_DEPRECIATED.
	GetStatistics(ctx context.Context, workplaceID string, statuses []domain.AssetStatus, userID string) (*domain.AssetStatistics, error)
}
