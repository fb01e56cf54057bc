package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
	"github.com/SscSPs/fixed_assets_app/internal/utils/accounting"
)

type scheduleService struct {
	BaseService
	assetRepo        portsrepo.FixedAssetReader
	depreciationRepo portsrepo.DepreciationReader
}

// ScheduleServiceOption is a functional option for configuring the schedule service
type ScheduleServiceOption func(*scheduleService)

// WithScheduleWorkplaceAuthorizer adds workplace authorizer dependency
func WithScheduleWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) ScheduleServiceOption {
	return func(s *scheduleService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithScheduleClock overrides the clock deciding which years are pending or planned
func WithScheduleClock(clock func() time.Time) ScheduleServiceOption {
	return func(s *scheduleService) {
		s.Clock = clock
	}
}

// NewScheduleService creates the schedule projection service
func NewScheduleService(assetRepo portsrepo.FixedAssetReader, depreciationRepo portsrepo.DepreciationReader, options ...ScheduleServiceOption) portssvc.ScheduleSvc {
	svc := &scheduleService{
		assetRepo:        assetRepo,
		depreciationRepo: depreciationRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ScheduleSvc = (*scheduleService)(nil)

func (s *scheduleService) GetSchedule(ctx context.Context, workplaceID string, assetID string, userID string) (*domain.DepreciationSchedule, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	asset, err := s.findWorkplaceAsset(ctx, s.assetRepo, workplaceID, assetID)
	if err != nil {
		return nil, err
	}

	entries, err := s.depreciationRepo.ListDepreciationsByAsset(ctx, assetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list depreciation entries for schedule",
			slog.String("asset_id", assetID))
		return nil, err
	}

	schedule, err := accounting.BuildSchedule(*asset, entries, s.Now().Year())
	if err != nil {
		s.LogError(ctx, err, "Failed to project depreciation schedule",
			slog.String("asset_id", assetID))
		return nil, err
	}
	return schedule, nil
}
