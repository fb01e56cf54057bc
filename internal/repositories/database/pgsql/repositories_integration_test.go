//go:build integration

package pgsql_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fixed_assets_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const migrationsPath = "file://../../../../migrations"

type PgsqlRepositoriesTestSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     pgsql.Repositories
	now       time.Time
}

func (s *PgsqlRepositoriesTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	applied, err := database.RunMigrations(dsn, migrationsPath)
	s.Require().NoError(err)
	s.True(applied)

	s.pool, err = database.NewPgxPool(s.ctx, dsn, 10, true)
	s.Require().NoError(err)
	s.repos = pgsql.NewRepositoryProvider(s.pool)
}

func (s *PgsqlRepositoriesTestSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.container.Terminate(ctx); err != nil {
			s.T().Logf("warning: failed to terminate postgres container: %v", err)
		}
	}
}

func (s *PgsqlRepositoriesTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE asset_depreciations, fixed_assets, asset_number_sequences, user_workplaces, workplaces`)
	s.Require().NoError(err)
}

func (s *PgsqlRepositoriesTestSuite) saveAsset(id, number string, cost string) domain.FixedAsset {
	asset := domain.FixedAsset{
		AssetID:            id,
		WorkplaceID:        "wp-1",
		AssetNumber:        number,
		Name:               "Forklift " + number,
		Category:           domain.CategoryMachinery,
		AcquisitionDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		AcquisitionCost:    decimal.RequireFromString(cost),
		ResidualValue:      decimal.Zero,
		UsefulLifeYears:    4,
		DepreciationMethod: domain.MethodLinear,
		DepreciationRate:   decimal.RequireFromString("0.30"),
		CurrentBookValue:   decimal.RequireFromString(cost),
		Status:             domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now, CreatedBy: "u", LastUpdatedAt: s.now, LastUpdatedBy: "u",
		},
	}
	s.Require().NoError(s.repos.FixedAssetRepo.SaveAsset(s.ctx, asset))
	return asset
}

func (s *PgsqlRepositoriesTestSuite) entry(asset domain.FixedAsset, year int, amount string) domain.AssetDepreciation {
	a := decimal.RequireFromString(amount)
	return domain.AssetDepreciation{
		DepreciationID:  fmt.Sprintf("%s-%d", asset.AssetID, year),
		WorkplaceID:     asset.WorkplaceID,
		AssetID:         asset.AssetID,
		FiscalYear:      year,
		Amount:          a,
		BookValueBefore: asset.CurrentBookValue,
		BookValueAfter:  asset.CurrentBookValue.Sub(a),
		AuditFields: domain.AuditFields{
			CreatedAt: s.now, CreatedBy: "u", LastUpdatedAt: s.now, LastUpdatedBy: "u",
		},
	}
}

func (s *PgsqlRepositoriesTestSuite) TestAssetRoundTripAndUniqueNumber() {
	asset := s.saveAsset("a-1", "ANL-00001", "10000.50")

	found, err := s.repos.FixedAssetRepo.FindAssetByID(s.ctx, asset.AssetID)
	s.Require().NoError(err)
	s.Equal(asset.AssetNumber, found.AssetNumber)
	s.True(found.AcquisitionCost.Equal(asset.AcquisitionCost))
	s.Nil(found.SalePrice)
	s.Equal(asset.AcquisitionDate, found.AcquisitionDate)

	dup := asset
	dup.AssetID = "a-2"
	s.ErrorIs(s.repos.FixedAssetRepo.SaveAsset(s.ctx, dup), apperrors.ErrDuplicate)

	_, err = s.repos.FixedAssetRepo.FindAssetByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PgsqlRepositoriesTestSuite) TestInsertDepreciationIfAbsent() {
	asset := s.saveAsset("a-1", "ANL-00001", "10000")
	first := s.entry(asset, 2024, "2500")

	s.Require().NoError(s.repos.DepreciationRepo.InsertDepreciationIfAbsent(s.ctx, first, domain.StatusActive))
	updated, err := s.repos.FixedAssetRepo.FindAssetByID(s.ctx, asset.AssetID)
	s.Require().NoError(err)
	s.True(updated.CurrentBookValue.Equal(decimal.RequireFromString("7500")))

	again := first
	again.DepreciationID = "other"
	s.ErrorIs(s.repos.DepreciationRepo.InsertDepreciationIfAbsent(s.ctx, again, domain.StatusActive), apperrors.ErrDuplicate)

	stale := s.entry(asset, 2025, "2500") // still claims book value 10000
	s.ErrorIs(s.repos.DepreciationRepo.InsertDepreciationIfAbsent(s.ctx, stale, domain.StatusActive), apperrors.ErrConflict)
	_, err = s.repos.DepreciationRepo.FindDepreciationByAssetAndYear(s.ctx, asset.AssetID, 2025)
	s.ErrorIs(err, apperrors.ErrNotFound)

	count, err := s.repos.DepreciationRepo.CountDepreciationsByAsset(s.ctx, asset.AssetID)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *PgsqlRepositoriesTestSuite) TestConcurrentInsertsBookOnce() {
	asset := s.saveAsset("a-1", "ANL-00001", "10000")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := s.entry(asset, 2024, "2500")
			e.DepreciationID = fmt.Sprintf("%s-%d", e.DepreciationID, i)
			errs <- s.repos.DepreciationRepo.InsertDepreciationIfAbsent(s.ctx, e, domain.StatusActive)
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, apperrors.ErrDuplicate)
	}
	s.Equal(1, succeeded)

	updated, err := s.repos.FixedAssetRepo.FindAssetByID(s.ctx, asset.AssetID)
	s.Require().NoError(err)
	s.True(updated.CurrentBookValue.Equal(decimal.RequireFromString("7500")))
}

func (s *PgsqlRepositoriesTestSuite) TestMarkFullyDepreciatedAndPostYear() {
	asset := s.saveAsset("a-1", "ANL-00001", "10000")
	s.Require().NoError(s.repos.DepreciationRepo.InsertDepreciationIfAbsent(s.ctx, s.entry(asset, 2024, "2500"), domain.StatusActive))

	posted, err := s.repos.DepreciationRepo.MarkYearPosted(s.ctx, "wp-1", 2024, "admin", s.now)
	s.Require().NoError(err)
	s.Equal(1, posted)
	posted, err = s.repos.DepreciationRepo.MarkYearPosted(s.ctx, "wp-1", 2024, "admin", s.now)
	s.Require().NoError(err)
	s.Zero(posted)

	s.Require().NoError(s.repos.FixedAssetRepo.MarkFullyDepreciated(s.ctx, asset.AssetID, "u", s.now))
	s.ErrorIs(s.repos.FixedAssetRepo.MarkFullyDepreciated(s.ctx, asset.AssetID, "u", s.now), apperrors.ErrConflict)
	s.ErrorIs(s.repos.FixedAssetRepo.MarkFullyDepreciated(s.ctx, "missing", "u", s.now), apperrors.ErrNotFound)
}

func (s *PgsqlRepositoriesTestSuite) TestUpdateAssetLockedRollsBackOnError() {
	asset := s.saveAsset("a-1", "ANL-00001", "10000")

	_, err := s.repos.FixedAssetRepo.UpdateAssetLocked(s.ctx, asset.AssetID, func(a *domain.FixedAsset) error {
		a.Name = "changed"
		return apperrors.ErrInvalidState
	})
	s.ErrorIs(err, apperrors.ErrInvalidState)

	gain := decimal.RequireFromString("500")
	disposal := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	updated, err := s.repos.FixedAssetRepo.UpdateAssetLocked(s.ctx, asset.AssetID, func(a *domain.FixedAsset) error {
		a.Status = domain.StatusSold
		a.SalePrice = &a.AcquisitionCost
		a.GainLoss = &gain
		a.DisposalDate = &disposal
		a.CurrentBookValue = decimal.Zero
		return nil
	})
	s.Require().NoError(err)
	s.Equal(domain.StatusSold, updated.Status)

	found, err := s.repos.FixedAssetRepo.FindAssetByID(s.ctx, asset.AssetID)
	s.Require().NoError(err)
	s.Equal("Forklift ANL-00001", found.Name)
	s.Require().NotNil(found.GainLoss)
	s.True(found.GainLoss.Equal(gain))
	s.True(found.CurrentBookValue.IsZero())
}

func (s *PgsqlRepositoriesTestSuite) TestListingAndSequence() {
	s.saveAsset("a-1", "ANL-00001", "1000")
	s.saveAsset("a-2", "ANL-00002", "2000")
	s.saveAsset("a-3", "ANL-00003", "3000")

	page, err := s.repos.FixedAssetRepo.ListAssets(s.ctx, "wp-1", domain.AssetFilter{Limit: 2, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal("ANL-00002", page[0].AssetNumber)

	active, err := s.repos.FixedAssetRepo.FindActiveByWorkplace(s.ctx, "wp-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Empty(active)

	byStatus, err := s.repos.FixedAssetRepo.ListAssetsByStatus(s.ctx, "wp-1", []domain.AssetStatus{domain.StatusActive})
	s.Require().NoError(err)
	s.Len(byStatus, 3)

	for want := int64(1); want <= 3; want++ {
		got, err := s.repos.FixedAssetRepo.NextAssetNumber(s.ctx, "wp-9")
		s.Require().NoError(err)
		s.Equal(want, got)
	}
}

func (s *PgsqlRepositoriesTestSuite) TestWorkplaceMembership() {
	s.Require().NoError(s.repos.Workplace.SaveWorkplace(s.ctx, domain.Workplace{
		WorkplaceID: "wp-1", Name: "Muster AG", IsActive: true,
		AuditFields: domain.AuditFields{CreatedAt: s.now, CreatedBy: "u", LastUpdatedAt: s.now, LastUpdatedBy: "u"},
	}))
	s.Require().NoError(s.repos.WorkplaceRepo.AddUserToWorkplace(s.ctx, domain.UserWorkplace{
		UserID: "u-1", WorkplaceID: "wp-1", Role: domain.RoleMember, JoinedAt: s.now,
	}))

	w, err := s.repos.WorkplaceRepo.FindWorkplaceByID(s.ctx, "wp-1")
	s.Require().NoError(err)
	s.True(w.IsActive)

	m, err := s.repos.WorkplaceRepo.FindUserWorkplaceRole(s.ctx, "u-1", "wp-1")
	s.Require().NoError(err)
	s.Equal(domain.RoleMember, m.Role)

	_, err = s.repos.WorkplaceRepo.FindUserWorkplaceRole(s.ctx, "u-2", "wp-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPgsqlRepositoriesTestSuite(t *testing.T) {
	suite.Run(t, new(PgsqlRepositoriesTestSuite))
}
