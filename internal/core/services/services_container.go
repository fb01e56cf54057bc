package services

import (
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
	"github.com/SscSPs/fixed_assets_app/internal/platform/config"
	"github.com/SscSPs/fixed_assets_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// locker and m may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker RunLocker, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize the authorizer first since every other service depends on it
	container.Workplace = NewWorkplaceAuthorizer(repos.WorkplaceRepo)

	container.FixedAsset = NewFixedAssetService(
		repos.FixedAssetRepo,
		repos.DepreciationRepo,
		WithAssetWorkplaceAuthorizer(container.Workplace),
		WithRateTable(cfg.DepreciationRates),
	)

	runOptions := []DepreciationRunOption{
		WithRunWorkplaceAuthorizer(container.Workplace),
		WithRunMetrics(m),
	}
	if locker != nil {
		runOptions = append(runOptions, WithRunLocker(locker))
	}
	container.Depreciation = NewDepreciationRunService(repos.FixedAssetRepo, repos.DepreciationRepo, runOptions...)

	container.Schedule = NewScheduleService(
		repos.FixedAssetRepo,
		repos.DepreciationRepo,
		WithScheduleWorkplaceAuthorizer(container.Workplace),
	)
	container.Statistics = NewStatisticsService(repos.FixedAssetRepo, container.Workplace)

	return container
}
