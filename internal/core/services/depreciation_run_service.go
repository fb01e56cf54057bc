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
	"github.com/SscSPs/fixed_assets_app/internal/platform/locking"
	"github.com/SscSPs/fixed_assets_app/internal/platform/metrics"
	"github.com/SscSPs/fixed_assets_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RunLocker guards a batch run key across processes. Acquire returns
// locking.ErrNotObtained when another holder owns the key.
type RunLocker interface {
	Acquire(ctx context.Context, key string) (locking.ReleaseFunc, error)
}

// depreciationRunService implements the DepreciationRunSvc interface
type depreciationRunService struct {
	BaseService
	assetRepo        portsrepo.FixedAssetRepositoryFacade
	depreciationRepo portsrepo.DepreciationRepositoryFacade
	locker           RunLocker
	metrics          *metrics.Metrics
}

// DepreciationRunOption is a functional option for configuring the batch run service
type DepreciationRunOption func(*depreciationRunService)

// WithRunWorkplaceAuthorizer adds workplace authorizer dependency
func WithRunWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) DepreciationRunOption {
	return func(s *depreciationRunService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithRunLocker adds a best-effort cross-process lock per (workplace, fiscal year)
func WithRunLocker(locker RunLocker) DepreciationRunOption {
	return func(s *depreciationRunService) {
		s.locker = locker
	}
}

// WithRunMetrics records run outcomes in prometheus
func WithRunMetrics(m *metrics.Metrics) DepreciationRunOption {
	return func(s *depreciationRunService) {
		s.metrics = m
	}
}

// WithRunClock overrides the clock used for audit fields and run timing
func WithRunClock(clock func() time.Time) DepreciationRunOption {
	return func(s *depreciationRunService) {
		s.Clock = clock
	}
}

// NewDepreciationRunService creates the batch run service with the provided options
func NewDepreciationRunService(assetRepo portsrepo.FixedAssetRepositoryFacade, depreciationRepo portsrepo.DepreciationRepositoryFacade, options ...DepreciationRunOption) portssvc.DepreciationRunSvc {
	svc := &depreciationRunService{
		assetRepo:        assetRepo,
		depreciationRepo: depreciationRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DepreciationRunSvc = (*depreciationRunService)(nil)

func (s *depreciationRunService) RunDepreciation(ctx context.Context, workplaceID string, fiscalYear int, postImmediately bool, userID string) (*domain.DepreciationRun, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to run depreciation",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if fiscalYear < 1 {
		return nil, fmt.Errorf("%w: fiscal year must be positive", apperrors.ErrValidation)
	}

	start := time.Now()
	release, err := s.acquireRunLock(ctx, workplaceID, fiscalYear)
	if err != nil {
		return nil, err
	}
	if release != nil {
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				s.LogError(ctx, err, "Failed to release depreciation run lock",
					slog.String("workplace_id", workplaceID),
					slog.Int("fiscal_year", fiscalYear))
			}
		}()
	}

	// Eligible: ACTIVE and acquired before the end of the fiscal year.
	cutoff := time.Date(fiscalYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	assets, err := s.assetRepo.FindActiveByWorkplace(ctx, workplaceID, cutoff)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assets for depreciation run",
			slog.String("workplace_id", workplaceID),
			slog.Int("fiscal_year", fiscalYear))
		return nil, err
	}

	run := &domain.DepreciationRun{
		WorkplaceID:       workplaceID,
		FiscalYear:        fiscalYear,
		TotalDepreciation: decimal.Zero,
		Results:           make([]domain.AssetRunResult, 0, len(assets)),
	}
	for _, asset := range assets {
		result := s.processAsset(ctx, asset, fiscalYear, postImmediately, userID)
		run.Results = append(run.Results, result)
		run.AssetsProcessed++
		switch result.Outcome {
		case domain.OutcomeCalculated:
			run.DepreciationsCreated++
			run.TotalDepreciation = run.TotalDepreciation.Add(result.Amount)
		case domain.OutcomeFailed:
			run.AssetsFailed++
		}
	}

	s.metrics.ObserveRun(run, time.Since(start))
	s.LogInfo(ctx, "Depreciation run finished",
		slog.String("workplace_id", workplaceID),
		slog.Int("fiscal_year", fiscalYear),
		slog.Int("assets_processed", run.AssetsProcessed),
		slog.Int("depreciations_created", run.DepreciationsCreated),
		slog.Int("assets_failed", run.AssetsFailed),
		slog.String("total_depreciation", run.TotalDepreciation.String()))
	return run, nil
}

// acquireRunLock returns a nil release when no lock is held. A run already holding the
// lock for the same workplace and year makes this one fail with ErrConflict. When redis
// itself is unavailable the run proceeds unlocked: the (asset, fiscal year) uniqueness of
// entries is what prevents double booking.
func (s *depreciationRunService) acquireRunLock(ctx context.Context, workplaceID string, fiscalYear int) (locking.ReleaseFunc, error) {
	if s.locker == nil {
		return nil, nil
	}
	release, err := s.locker.Acquire(ctx, locking.DepreciationRunKey(workplaceID, fiscalYear))
	switch {
	case err == nil:
		return release, nil
	case errors.Is(err, locking.ErrNotObtained):
		s.LogInfo(ctx, "Another depreciation run holds the lock",
			slog.String("workplace_id", workplaceID),
			slog.Int("fiscal_year", fiscalYear))
		return nil, fmt.Errorf("%w: depreciation run for %d already in progress", apperrors.ErrConflict, fiscalYear)
	default:
		s.LogError(ctx, err, "Failed to obtain depreciation run lock, proceeding without it",
			slog.String("workplace_id", workplaceID),
			slog.Int("fiscal_year", fiscalYear))
		return nil, nil
	}
}

// processAsset books one asset's depreciation for the year. Every failure is
// converted into a FAILED result.
func (s *depreciationRunService) processAsset(ctx context.Context, asset domain.FixedAsset, fiscalYear int, postImmediately bool, userID string) domain.AssetRunResult {
	result := domain.AssetRunResult{
		AssetID:     asset.AssetID,
		AssetNumber: asset.AssetNumber,
		Amount:      decimal.Zero,
	}
	fail := func(reason string, err error) domain.AssetRunResult {
		s.LogError(ctx, err, "Depreciation failed for asset",
			slog.String("asset_id", asset.AssetID),
			slog.Int("fiscal_year", fiscalYear),
			slog.String("reason", reason))
		result.Outcome = domain.OutcomeFailed
		result.Reason = reason
		result.Error = err.Error()
		return result
	}
	skip := func(reason string) domain.AssetRunResult {
		result.Outcome = domain.OutcomeSkipped
		result.Reason = reason
		return result
	}

	if _, err := s.depreciationRepo.FindDepreciationByAssetAndYear(ctx, asset.AssetID, fiscalYear); err == nil {
		return skip(domain.ReasonAlreadyProcessed)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fail(domain.ReasonPersistenceFailed, err)
	}

	periodsElapsed, err := s.depreciationRepo.CountDepreciationsByAsset(ctx, asset.AssetID)
	if err != nil {
		return fail(domain.ReasonPersistenceFailed, err)
	}

	amount, err := accounting.CalculateDepreciation(accounting.InputFromAsset(asset, asset.CurrentBookValue, periodsElapsed))
	if err != nil {
		return fail(domain.ReasonInvalidParameters, err)
	}

	now := s.Now()
	if amount.IsZero() {
		if err := s.assetRepo.MarkFullyDepreciated(ctx, asset.AssetID, userID, now); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				return fail(domain.ReasonConcurrentUpdate, err)
			}
			return fail(domain.ReasonPersistenceFailed, err)
		}
		return skip(domain.ReasonFullyDepreciated)
	}

	before := asset.CurrentBookValue
	after := before.Sub(amount)
	newStatus := domain.StatusActive
	if after.LessThanOrEqual(asset.ResidualValue) {
		newStatus = domain.StatusFullyDepreciated
	}

	entry := domain.AssetDepreciation{
		DepreciationID:  uuid.NewString(),
		WorkplaceID:     asset.WorkplaceID,
		AssetID:         asset.AssetID,
		FiscalYear:      fiscalYear,
		Amount:          amount,
		BookValueBefore: before,
		BookValueAfter:  after,
		IsPosted:        postImmediately,
		AuditFields:     domain.NewAuditFields(userID, now),
	}
	if err := s.depreciationRepo.InsertDepreciationIfAbsent(ctx, entry, newStatus); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			// A concurrent run booked the year between our check and insert.
			return skip(domain.ReasonAlreadyProcessed)
		case errors.Is(err, apperrors.ErrConflict):
			return fail(domain.ReasonConcurrentUpdate, err)
		default:
			return fail(domain.ReasonPersistenceFailed, err)
		}
	}

	s.LogDebug(ctx, "Depreciation booked",
		slog.String("asset_id", asset.AssetID),
		slog.Int("fiscal_year", fiscalYear),
		slog.String("amount", amount.String()))

	result.Outcome = domain.OutcomeCalculated
	result.Amount = amount
	result.BookValueBefore = &before
	result.BookValueAfter = &after
	return result
}

func (s *depreciationRunService) PostDepreciationYear(ctx context.Context, workplaceID string, fiscalYear int, userID string) (int, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to post depreciation",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return 0, err
	}
	if fiscalYear < 1 {
		return 0, fmt.Errorf("%w: fiscal year must be positive", apperrors.ErrValidation)
	}

	posted, err := s.depreciationRepo.MarkYearPosted(ctx, workplaceID, fiscalYear, userID, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to post depreciation entries",
			slog.String("workplace_id", workplaceID),
			slog.Int("fiscal_year", fiscalYear))
		return 0, err
	}

	s.LogInfo(ctx, "Depreciation entries posted",
		slog.String("workplace_id", workplaceID),
		slog.Int("fiscal_year", fiscalYear),
		slog.Int("entries_posted", posted))
	return posted, nil
}
