package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
)

// FixedAssetReader defines read operations for fixed asset data
type FixedAssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// ListAssets retrieves a page of a workplace's assets ordered by asset number.
	ListAssets(ctx context.Context, workplaceID string, filter domain.AssetFilter) ([]domain.FixedAsset, error)

	// FindActiveByWorkplace retrieves every ACTIVE asset acquired before cutoff.
	FindActiveByWorkplace(ctx context.Context, workplaceID string, cutoff time.Time) ([]domain.FixedAsset, error)

	// ListAssetsByStatus retrieves every asset of a workplace in one of the given statuses.
	ListAssetsByStatus(ctx context.Context, workplaceID string, statuses []domain.AssetStatus) ([]domain.FixedAsset, error)
}

// FixedAssetWriter defines write operations for fixed asset data
type FixedAssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.FixedAsset) error

	// UpdateAssetLocked loads the asset under a row lock, applies mutate and stores the result.
	// Nothing is written if mutate returns an error; that error is returned unchanged.
	UpdateAssetLocked(ctx context.Context, assetID string, mutate func(*domain.FixedAsset) error) (*domain.FixedAsset, error)

	// MarkFullyDepreciated moves an ACTIVE asset to FULLY_DEPRECIATED.
	// Returns ErrConflict if the asset is no longer ACTIVE.
	MarkFullyDepreciated(ctx context.Context, assetID string, userID string, now time.Time) error
}

// AssetNumberSequence hands out per-workplace sequence numbers for asset numbers.
type AssetNumberSequence interface {
	// NextAssetNumber atomically increments and returns the workplace's counter, starting at 1.
	NextAssetNumber(ctx context.Context, workplaceID string) (int64, error)
}

// FixedAssetRepositoryFacade combines all fixed-asset repository interfaces
type FixedAssetRepositoryFacade interface {
	FixedAssetReader
	FixedAssetWriter
	AssetNumberSequence
}
