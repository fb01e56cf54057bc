package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/dto"
	"github.com/SscSPs/fixed_assets_app/internal/platform/locking"
	"github.com/SscSPs/fixed_assets_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const (
	testWorkplaceID = "wp-1"
	testUserID      = "user-1"
)

var fixedNow = time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func linearRequest(cost, residual string, life int, acquired string) dto.CreateFixedAssetRequest {
	return dto.CreateFixedAssetRequest{
		Name:               "Delivery van",
		Category:           domain.CategoryVehicles,
		AcquisitionDate:    acquired,
		AcquisitionCost:    dec(cost),
		ResidualValue:      dec(residual),
		UsefulLifeYears:    life,
		DepreciationMethod: domain.MethodLinear,
	}
}

func decliningRequest(cost, residual string, life int, rate string, acquired string) dto.CreateFixedAssetRequest {
	return dto.CreateFixedAssetRequest{
		Name:               "CNC mill",
		Category:           domain.CategoryMachinery,
		AcquisitionDate:    acquired,
		AcquisitionCost:    dec(cost),
		ResidualValue:      dec(residual),
		UsefulLifeYears:    life,
		DepreciationMethod: domain.MethodDecliningBalance,
		DepreciationRate:   decPtr(rate),
	}
}

// flakyDepreciationRepo delegates to the memory store but lets tests inject
// insert failures per asset.
type flakyDepreciationRepo struct {
	*memory.Store
	mock.Mock
}

func (f *flakyDepreciationRepo) InsertDepreciationIfAbsent(ctx context.Context, entry domain.AssetDepreciation, newStatus domain.AssetStatus) error {
	args := f.Called(entry.AssetID)
	if err := args.Error(0); err != nil {
		return err
	}
	return f.Store.InsertDepreciationIfAbsent(ctx, entry, newStatus)
}

// MockRunLocker is a mock type for the RunLocker interface
type MockRunLocker struct {
	mock.Mock
}

func (m *MockRunLocker) Acquire(ctx context.Context, key string) (locking.ReleaseFunc, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(locking.ReleaseFunc), args.Error(1)
}
