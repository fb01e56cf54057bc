package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
	"github.com/SscSPs/fixed_assets_app/internal/utils/accounting"
)

// defaultStatisticsStatuses covers the assets still carried on the balance sheet.
var defaultStatisticsStatuses = []domain.AssetStatus{domain.StatusActive, domain.StatusFullyDepreciated}

type statisticsService struct {
	BaseService
	assetRepo portsrepo.FixedAssetReader
}

// NewStatisticsService creates the register statistics service
func NewStatisticsService(assetRepo portsrepo.FixedAssetReader, authorizer portssvc.WorkplaceAuthorizerSvc) portssvc.StatisticsSvc {
	return &statisticsService{
		BaseService: BaseService{WorkplaceAuthorizer: authorizer},
		assetRepo:   assetRepo,
	}
}

var _ portssvc.StatisticsSvc = (*statisticsService)(nil)

func (s *statisticsService) GetStatistics(ctx context.Context, workplaceID string, statuses []domain.AssetStatus, userID string) (*domain.AssetStatistics, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	if len(statuses) == 0 {
		statuses = defaultStatisticsStatuses
	}
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
		}
	}

	assets, err := s.assetRepo.ListAssetsByStatus(ctx, workplaceID, statuses)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assets for statistics",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	stats := accounting.AggregateStatistics(assets)
	return &stats, nil
}
