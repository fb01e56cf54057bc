package accounting

import (
	"fmt"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places monetary amounts are rounded to (Rappen).
const MoneyScale = 2

// RateScale is the number of decimal places a depreciation rate may carry.
const RateScale = 6

// FitsScale reports whether d has no significant digits beyond scale decimal places.
func FitsScale(d decimal.Decimal, scale int32) bool {
	return d.Equal(d.Round(scale))
}

// DepreciationInput carries everything needed to compute one period's depreciation.
type DepreciationInput struct {
	AcquisitionCost  decimal.Decimal
	ResidualValue    decimal.Decimal
	UsefulLifeYears  int
	Method           domain.DepreciationMethod
	Rate             decimal.Decimal
	CurrentBookValue decimal.Decimal
	PeriodsElapsed   int
}

// InputFromAsset builds the calculator input for an asset's next period.
func InputFromAsset(asset domain.FixedAsset, bookValue decimal.Decimal, periodsElapsed int) DepreciationInput {
	return DepreciationInput{
		AcquisitionCost:  asset.AcquisitionCost,
		ResidualValue:    asset.ResidualValue,
		UsefulLifeYears:  asset.UsefulLifeYears,
		Method:           asset.DepreciationMethod,
		Rate:             asset.DepreciationRate,
		CurrentBookValue: bookValue,
		PeriodsElapsed:   periodsElapsed,
	}
}

func (in DepreciationInput) validate() error {
	switch {
	case in.AcquisitionCost.IsNegative():
		return fmt.Errorf("%w: acquisition cost is negative", apperrors.ErrInvalidState)
	case in.ResidualValue.IsNegative():
		return fmt.Errorf("%w: residual value is negative", apperrors.ErrInvalidState)
	case in.CurrentBookValue.IsNegative():
		return fmt.Errorf("%w: book value is negative", apperrors.ErrInvalidState)
	case in.Rate.IsNegative():
		return fmt.Errorf("%w: depreciation rate is negative", apperrors.ErrInvalidState)
	case in.UsefulLifeYears < 1:
		return fmt.Errorf("%w: useful life must be at least one year", apperrors.ErrInvalidState)
	case in.PeriodsElapsed < 0:
		return fmt.Errorf("%w: periods elapsed is negative", apperrors.ErrInvalidState)
	case !in.Method.IsValid():
		return fmt.Errorf("%w: unknown depreciation method %q", apperrors.ErrInvalidState, in.Method)
	}
	return nil
}

// CalculateDepreciation returns the depreciation amount for the next period.
//
// The result is never negative and never takes the book value below the residual
// value. Zero means the asset is fully depreciated and nothing should be booked.
//
// Linear assets write off (cost - residual) / life per year. Declining-balance
// assets write off bookValue * rate until the straight-line amount over the
// remaining life exceeds it (or only one year is left), at which point the whole
// remainder down to the residual value is written off.
func CalculateDepreciation(in DepreciationInput) (decimal.Decimal, error) {
	if err := in.validate(); err != nil {
		return decimal.Zero, err
	}

	depreciable := in.CurrentBookValue.Sub(in.ResidualValue)
	if !depreciable.IsPositive() {
		return decimal.Zero, nil
	}
	remainingYears := in.UsefulLifeYears - in.PeriodsElapsed

	switch in.Method {
	case domain.MethodLinear:
		// Last year absorbs the rounding remainder so the plan ends on the residual value.
		if remainingYears <= 1 {
			return depreciable, nil
		}
		annual := in.AcquisitionCost.Sub(in.ResidualValue).
			Div(decimal.NewFromInt(int64(in.UsefulLifeYears))).
			Round(MoneyScale)
		return decimal.Min(atLeastOneUnit(annual), depreciable), nil

	default: // domain.MethodDecliningBalance
		declining := in.CurrentBookValue.Mul(in.Rate).Round(MoneyScale)
		if remainingYears <= 1 {
			return depreciable, nil
		}
		linearRemaining := depreciable.Div(decimal.NewFromInt(int64(remainingYears)))
		if linearRemaining.GreaterThan(declining) {
			return depreciable, nil
		}
		return decimal.Min(declining, depreciable), nil
	}
}

// smallestUnit is one Rappen.
var smallestUnit = decimal.New(1, -MoneyScale)

// atLeastOneUnit keeps a linear amount that rounded down to zero from stalling an
// asset that still has value above its residual. Declining balance needs no floor:
// a zero declining amount always loses to the straight-line remainder.
func atLeastOneUnit(amount decimal.Decimal) decimal.Decimal {
	if amount.IsPositive() {
		return amount
	}
	return smallestUnit
}
