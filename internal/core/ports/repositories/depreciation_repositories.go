package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
)

// DepreciationReader defines read operations for depreciation entries
type DepreciationReader interface {
	// FindDepreciationByAssetAndYear returns ErrNotFound if the asset has no entry for the year.
	FindDepreciationByAssetAndYear(ctx context.Context, assetID string, fiscalYear int) (*domain.AssetDepreciation, error)

	// CountDepreciationsByAsset counts the entries booked for an asset.
	CountDepreciationsByAsset(ctx context.Context, assetID string) (int, error)

	// ListDepreciationsByAsset retrieves an asset's entries ordered by fiscal year.
	ListDepreciationsByAsset(ctx context.Context, assetID string) ([]domain.AssetDepreciation, error)
}

// DepreciationWriter defines write operations for depreciation entries
type DepreciationWriter interface {
	// InsertDepreciationIfAbsent books one entry and applies it to its asset atomically.
	//
	// The asset must still be ACTIVE with a book value equal to entry.BookValueBefore,
	// otherwise ErrConflict is returned. If an entry already exists for
	// (entry.AssetID, entry.FiscalYear) ErrDuplicate is returned. On success the
	// asset's book value becomes entry.BookValueAfter and its status newStatus.
	// Nothing is written when an error is returned.
	InsertDepreciationIfAbsent(ctx context.Context, entry domain.AssetDepreciation, newStatus domain.AssetStatus) error

	// MarkYearPosted flags every unposted entry of a workplace's fiscal year as posted
	// and returns how many entries changed.
	MarkYearPosted(ctx context.Context, workplaceID string, fiscalYear int, userID string, now time.Time) (int, error)
}

// DepreciationRepositoryFacade combines all depreciation repository interfaces
type DepreciationRepositoryFacade interface {
	DepreciationReader
	DepreciationWriter
}
