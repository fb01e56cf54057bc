package services

import (
	"context"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/dto"
)

// FixedAssetReaderSvc defines read operations for fixed asset data
type FixedAssetReaderSvc interface {
	// GetAsset retrieves an asset of the workplace. Assets of other workplaces are reported as not found.
	GetAsset(ctx context.Context, workplaceID string, assetID string, userID string) (*domain.FixedAsset, error)

	// ListAssets retrieves a filtered page of the workplace's assets.
	ListAssets(ctx context.Context, workplaceID string, filter domain.AssetFilter, userID string) ([]domain.FixedAsset, error)

	// ListDepreciations retrieves the depreciation entries booked for an asset.
	ListDepreciations(ctx context.Context, workplaceID string, assetID string, userID string) ([]domain.AssetDepreciation, error)
}

// FixedAssetWriterSvc defines write operations for fixed asset data
type FixedAssetWriterSvc interface {
	// CreateAsset registers a new ACTIVE asset, defaulting its rate from the category.
	CreateAsset(ctx context.Context, workplaceID string, req dto.CreateFixedAssetRequest, userID string) (*domain.FixedAsset, error)

	// UpdateAsset changes descriptive fields. Rejected once the asset is disposed or sold.
	UpdateAsset(ctx context.Context, workplaceID string, assetID string, req dto.UpdateFixedAssetRequest, userID string) (*domain.FixedAsset, error)
}

// FixedAssetLifecycleSvc defines the terminal lifecycle transitions
type FixedAssetLifecycleSvc interface {
	// DisposeAsset retires the asset as SOLD (sale price given) or DISPOSED and books the gain or loss.
	DisposeAsset(ctx context.Context, workplaceID string, assetID string, req dto.DisposeFixedAssetRequest, userID string) (*domain.FixedAsset, error)
}

// FixedAssetSvcFacade combines all fixed-asset service interfaces
// This is a facade for clients that need access to all operations
type FixedAssetSvcFacade interface {
	FixedAssetReaderSvc
	FixedAssetWriterSvc
	FixedAssetLifecycleSvc
}
