package pgsql

import (
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories exposes the concrete repositories. Workplace is included
// separately so callers can seed workplaces, which the ports do not allow.
type Repositories struct {
	portsrepo.RepositoryProvider
	Workplace *PgxWorkplaceRepository
}

func NewRepositoryProvider(dbPool *pgxpool.Pool) Repositories {
	workplaceRepo := newPgxWorkplaceRepository(dbPool)

	return Repositories{
		RepositoryProvider: portsrepo.RepositoryProvider{
			FixedAssetRepo:   newPgxFixedAssetRepository(dbPool),
			DepreciationRepo: newPgxDepreciationRepository(dbPool),
			WorkplaceRepo:    workplaceRepo,
		},
		Workplace: workplaceRepo,
	}
}
