package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
	"github.com/SscSPs/fixed_assets_app/internal/dto"
	"github.com/SscSPs/fixed_assets_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const assetNumberFormat = "ANL-%05d"

// fixedAssetService implements the FixedAssetSvcFacade interface
type fixedAssetService struct {
	BaseService
	assetRepo        portsrepo.FixedAssetRepositoryFacade
	depreciationRepo portsrepo.DepreciationReader
	rates            accounting.RateTable
}

// FixedAssetServiceOption is a functional option for configuring the fixed asset service
type FixedAssetServiceOption func(*fixedAssetService)

// WithAssetWorkplaceAuthorizer adds workplace authorizer dependency
func WithAssetWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) FixedAssetServiceOption {
	return func(s *fixedAssetService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithRateTable replaces the built-in category default rates. An empty table is ignored.
func WithRateTable(rates accounting.RateTable) FixedAssetServiceOption {
	return func(s *fixedAssetService) {
		if len(rates) > 0 {
			s.rates = rates
		}
	}
}

// WithAssetClock overrides the clock used for audit fields and default disposal dates
func WithAssetClock(clock func() time.Time) FixedAssetServiceOption {
	return func(s *fixedAssetService) {
		s.Clock = clock
	}
}

// NewFixedAssetService creates a new fixed asset service with the provided options
func NewFixedAssetService(assetRepo portsrepo.FixedAssetRepositoryFacade, depreciationRepo portsrepo.DepreciationReader, options ...FixedAssetServiceOption) portssvc.FixedAssetSvcFacade {
	svc := &fixedAssetService{
		assetRepo:        assetRepo,
		depreciationRepo: depreciationRepo,
		rates:            accounting.DefaultRateTable(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.FixedAssetSvcFacade = (*fixedAssetService)(nil)

func (s *fixedAssetService) CreateAsset(ctx context.Context, workplaceID string, req dto.CreateFixedAssetRequest, userID string) (*domain.FixedAsset, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create fixed asset",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	acquisitionDate, err := parseDate(req.AcquisitionDate, "acquisition date")
	if err != nil {
		return nil, err
	}
	if err := validateCreateRequest(req); err != nil {
		s.LogDebug(ctx, "Rejected fixed asset creation",
			slog.String("workplace_id", workplaceID),
			slog.String("reason", err.Error()))
		return nil, err
	}

	// An explicit rate is an intentional override and is not checked against the category default.
	rate := s.rates.RateFor(req.Category)
	if req.DepreciationRate != nil {
		rate = *req.DepreciationRate
	}

	seq, err := s.assetRepo.NextAssetNumber(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate asset number",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	now := s.Now()
	asset := domain.FixedAsset{
		AssetID:            uuid.NewString(),
		WorkplaceID:        workplaceID,
		AssetNumber:        fmt.Sprintf(assetNumberFormat, seq),
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Location:           req.Location,
		SerialNumber:       req.SerialNumber,
		Supplier:           req.Supplier,
		AcquisitionDate:    acquisitionDate,
		AcquisitionCost:    req.AcquisitionCost,
		ResidualValue:      req.ResidualValue,
		UsefulLifeYears:    req.UsefulLifeYears,
		DepreciationMethod: req.DepreciationMethod,
		DepreciationRate:   rate,
		CurrentBookValue:   req.AcquisitionCost,
		Status:             domain.StatusActive,
		AuditFields:        domain.NewAuditFields(userID, now),
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save fixed asset",
			slog.String("asset_id", asset.AssetID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Fixed asset created successfully",
		slog.String("asset_id", asset.AssetID),
		slog.String("asset_number", asset.AssetNumber),
		slog.String("workplace_id", workplaceID))
	return &asset, nil
}

func validateCreateRequest(req dto.CreateFixedAssetRequest) error {
	switch {
	case req.Name == "":
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	case !req.Category.IsValid():
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, req.Category)
	case !req.DepreciationMethod.IsValid():
		return fmt.Errorf("%w: unknown depreciation method %q", apperrors.ErrValidation, req.DepreciationMethod)
	case !accounting.FitsScale(req.AcquisitionCost, accounting.MoneyScale):
		return fmt.Errorf("%w: acquisition cost has more than %d decimal places", apperrors.ErrValidation, accounting.MoneyScale)
	case !req.AcquisitionCost.IsPositive():
		return fmt.Errorf("%w: acquisition cost must be positive", apperrors.ErrValidation)
	case !accounting.FitsScale(req.ResidualValue, accounting.MoneyScale):
		return fmt.Errorf("%w: residual value has more than %d decimal places", apperrors.ErrValidation, accounting.MoneyScale)
	case req.ResidualValue.IsNegative():
		return fmt.Errorf("%w: residual value cannot be negative", apperrors.ErrValidation)
	case req.ResidualValue.GreaterThan(req.AcquisitionCost):
		return fmt.Errorf("%w: residual value cannot exceed acquisition cost", apperrors.ErrValidation)
	case req.UsefulLifeYears < 1:
		return fmt.Errorf("%w: useful life must be at least one year", apperrors.ErrValidation)
	case req.DepreciationRate != nil && req.DepreciationRate.IsNegative():
		return fmt.Errorf("%w: depreciation rate cannot be negative", apperrors.ErrValidation)
	case req.DepreciationRate != nil && !accounting.FitsScale(*req.DepreciationRate, accounting.RateScale):
		return fmt.Errorf("%w: depreciation rate has more than %d decimal places", apperrors.ErrValidation, accounting.RateScale)
	}
	return nil
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date formatted as YYYY-MM-DD", apperrors.ErrValidation, field)
	}
	return t, nil
}

func (s *fixedAssetService) GetAsset(ctx context.Context, workplaceID string, assetID string, userID string) (*domain.FixedAsset, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.findWorkplaceAsset(ctx, s.assetRepo, workplaceID, assetID)
}

func (s *fixedAssetService) ListAssets(ctx context.Context, workplaceID string, filter domain.AssetFilter, userID string) ([]domain.FixedAsset, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
		}
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, filter.Category)
	}
	filter = filter.Normalize()

	assets, err := s.assetRepo.ListAssets(ctx, workplaceID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed assets",
			slog.String("workplace_id", workplaceID),
			slog.Int("limit", filter.Limit),
			slog.Int("offset", filter.Offset))
		return nil, fmt.Errorf("failed to list fixed assets for workplace %s: %w", workplaceID, err)
	}
	if assets == nil {
		return []domain.FixedAsset{}, nil
	}
	return assets, nil
}

func (s *fixedAssetService) ListDepreciations(ctx context.Context, workplaceID string, assetID string, userID string) ([]domain.AssetDepreciation, error) {
	if _, err := s.GetAsset(ctx, workplaceID, assetID, userID); err != nil {
		return nil, err
	}

	entries, err := s.depreciationRepo.ListDepreciationsByAsset(ctx, assetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list depreciation entries",
			slog.String("asset_id", assetID))
		return nil, err
	}
	if entries == nil {
		return []domain.AssetDepreciation{}, nil
	}
	return entries, nil
}

func (s *fixedAssetService) UpdateAsset(ctx context.Context, workplaceID string, assetID string, req dto.UpdateFixedAssetRequest, userID string) (*domain.FixedAsset, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	if req.Category != nil && !req.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, *req.Category)
	}
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
	}

	now := s.Now()
	updated, err := s.assetRepo.UpdateAssetLocked(ctx, assetID, func(a *domain.FixedAsset) error {
		if a.WorkplaceID != workplaceID {
			return apperrors.NewNotFoundError("fixed asset " + assetID)
		}
		if a.Status.IsTerminal() {
			return fmt.Errorf("%w: asset %s is %s and can no longer be changed", apperrors.ErrInvalidState, a.AssetNumber, a.Status)
		}

		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.Description != nil {
			a.Description = *req.Description
		}
		if req.Category != nil {
			a.Category = *req.Category
		}
		if req.Location != nil {
			a.Location = *req.Location
		}
		if req.SerialNumber != nil {
			a.SerialNumber = *req.SerialNumber
		}
		if req.Supplier != nil {
			a.Supplier = *req.Supplier
		}
		a.Touch(userID, now)
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to update fixed asset",
				slog.String("asset_id", assetID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Fixed asset updated successfully",
		slog.String("asset_id", assetID),
		slog.String("workplace_id", workplaceID))
	return updated, nil
}

func (s *fixedAssetService) DisposeAsset(ctx context.Context, workplaceID string, assetID string, req dto.DisposeFixedAssetRequest, userID string) (*domain.FixedAsset, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := s.Now()
	disposalDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.DisposalDate != "" {
		d, err := parseDate(req.DisposalDate, "disposal date")
		if err != nil {
			return nil, err
		}
		disposalDate = d
	}
	if req.SalePrice != nil && req.SalePrice.IsNegative() {
		return nil, fmt.Errorf("%w: sale price cannot be negative", apperrors.ErrValidation)
	}
	if req.SalePrice != nil && !accounting.FitsScale(*req.SalePrice, accounting.MoneyScale) {
		return nil, fmt.Errorf("%w: sale price has more than %d decimal places", apperrors.ErrValidation, accounting.MoneyScale)
	}

	disposed, err := s.assetRepo.UpdateAssetLocked(ctx, assetID, func(a *domain.FixedAsset) error {
		if a.WorkplaceID != workplaceID {
			return apperrors.NewNotFoundError("fixed asset " + assetID)
		}
		if a.Status.IsTerminal() {
			return fmt.Errorf("%w: asset %s is already %s", apperrors.ErrInvalidState, a.AssetNumber, a.Status)
		}
		if disposalDate.Before(a.AcquisitionDate) {
			return fmt.Errorf("%w: disposal date precedes acquisition date", apperrors.ErrValidation)
		}

		salePrice := decimal.Zero
		status := domain.StatusDisposed
		if req.SalePrice != nil {
			salePrice = *req.SalePrice
			status = domain.StatusSold
			a.SalePrice = &salePrice
		}
		gainLoss := salePrice.Sub(a.CurrentBookValue)

		a.Status = status
		a.GainLoss = &gainLoss
		a.CurrentBookValue = decimal.Zero
		a.DisposalDate = &disposalDate
		a.DisposalReason = req.Reason
		a.DisposalNotes = req.Notes
		a.Touch(userID, now)
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidState) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to dispose fixed asset",
				slog.String("asset_id", assetID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Fixed asset disposed",
		slog.String("asset_id", assetID),
		slog.String("workplace_id", workplaceID),
		slog.String("status", string(disposed.Status)),
		slog.String("gain_loss", disposed.GainLoss.String()))
	return disposed, nil
}
