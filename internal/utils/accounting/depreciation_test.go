package accounting_test

import (
	"testing"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateDepreciation_Linear(t *testing.T) {
	in := accounting.DepreciationInput{
		AcquisitionCost:  d("10000"),
		ResidualValue:    d("0"),
		UsefulLifeYears:  4,
		Method:           domain.MethodLinear,
		Rate:             d("0.25"),
		CurrentBookValue: d("10000"),
	}

	book := in.CurrentBookValue
	for period := 0; period < 4; period++ {
		in.CurrentBookValue = book
		in.PeriodsElapsed = period
		amount, err := accounting.CalculateDepreciation(in)
		require.NoError(t, err)
		assert.True(t, amount.Equal(d("2500")), "period %d: got %s", period, amount)
		book = book.Sub(amount)
	}
	assert.True(t, book.IsZero())

	in.CurrentBookValue = book
	in.PeriodsElapsed = 4
	amount, err := accounting.CalculateDepreciation(in)
	require.NoError(t, err)
	assert.True(t, amount.IsZero())
}

func TestCalculateDepreciation_LinearCapsAtResidual(t *testing.T) {
	amount, err := accounting.CalculateDepreciation(accounting.DepreciationInput{
		AcquisitionCost:  d("10000"),
		ResidualValue:    d("1000"),
		UsefulLifeYears:  3,
		Method:           domain.MethodLinear,
		CurrentBookValue: d("1500"),
		PeriodsElapsed:   1,
	})
	require.NoError(t, err)
	assert.True(t, amount.Equal(d("500")), "got %s", amount)
}

func TestCalculateDepreciation_LinearRoundingEndsOnResidual(t *testing.T) {
	in := accounting.DepreciationInput{
		AcquisitionCost:  d("10000"),
		ResidualValue:    d("0"),
		UsefulLifeYears:  3,
		Method:           domain.MethodLinear,
		CurrentBookValue: d("10000"),
	}
	annual := d("10000").Div(d("3"))

	book := in.CurrentBookValue
	for period := 0; period < 3; period++ {
		in.CurrentBookValue = book
		in.PeriodsElapsed = period
		amount, err := accounting.CalculateDepreciation(in)
		require.NoError(t, err)
		assert.True(t, amount.Sub(annual).Abs().LessThanOrEqual(d("0.01")), "period %d: %s", period, amount)
		book = book.Sub(amount)
		assert.False(t, book.IsNegative())
	}
	assert.True(t, book.IsZero(), "got %s", book)
}

func TestCalculateDepreciation_DecliningBalanceScenario(t *testing.T) {
	in := accounting.DepreciationInput{
		AcquisitionCost:  d("10000"),
		ResidualValue:    d("1000"),
		UsefulLifeYears:  5,
		Method:           domain.MethodDecliningBalance,
		Rate:             d("0.4"),
		CurrentBookValue: d("10000"),
	}
	expected := []string{"4000", "2400", "1440", "864", "296"}

	book := in.CurrentBookValue
	for period, want := range expected {
		in.CurrentBookValue = book
		in.PeriodsElapsed = period
		amount, err := accounting.CalculateDepreciation(in)
		require.NoError(t, err)
		assert.True(t, amount.Equal(d(want)), "period %d: want %s got %s", period, want, amount)
		book = book.Sub(amount)
	}
	assert.True(t, book.Equal(d("1000")), "final book value %s", book)
}

func TestCalculateDepreciation_DecliningSwitchesToLinearPayoff(t *testing.T) {
	// 2000 * 0.1 = 200 declining, but (2000-0)/2 = 1000 straight-line remaining.
	amount, err := accounting.CalculateDepreciation(accounting.DepreciationInput{
		AcquisitionCost:  d("5000"),
		ResidualValue:    d("0"),
		UsefulLifeYears:  5,
		Method:           domain.MethodDecliningBalance,
		Rate:             d("0.1"),
		CurrentBookValue: d("2000"),
		PeriodsElapsed:   3,
	})
	require.NoError(t, err)
	assert.True(t, amount.Equal(d("2000")), "got %s", amount)
}

func TestCalculateDepreciation_DecliningNeverOvershoots(t *testing.T) {
	for _, rate := range []string{"0.05", "0.2", "0.4", "0.75", "1"} {
		in := accounting.DepreciationInput{
			AcquisitionCost:  d("7350.55"),
			ResidualValue:    d("350"),
			UsefulLifeYears:  6,
			Method:           domain.MethodDecliningBalance,
			Rate:             d(rate),
			CurrentBookValue: d("7350.55"),
		}
		book := in.CurrentBookValue
		for period := 0; period < in.UsefulLifeYears; period++ {
			in.CurrentBookValue = book
			in.PeriodsElapsed = period
			amount, err := accounting.CalculateDepreciation(in)
			require.NoError(t, err)
			assert.False(t, amount.IsNegative())
			book = book.Sub(amount)
			assert.True(t, book.GreaterThanOrEqual(in.ResidualValue), "rate %s period %d book %s", rate, period, book)
		}
		assert.True(t, book.Equal(in.ResidualValue), "rate %s ended at %s", rate, book)
	}
}

func TestCalculateDepreciation_AtResidualReturnsZero(t *testing.T) {
	for _, method := range []domain.DepreciationMethod{domain.MethodLinear, domain.MethodDecliningBalance} {
		amount, err := accounting.CalculateDepreciation(accounting.DepreciationInput{
			AcquisitionCost:  d("1000"),
			ResidualValue:    d("100"),
			UsefulLifeYears:  3,
			Method:           method,
			Rate:             d("0.3"),
			CurrentBookValue: d("100"),
			PeriodsElapsed:   1,
		})
		require.NoError(t, err)
		assert.True(t, amount.IsZero(), string(method))
	}
}

func TestCalculateDepreciation_InvalidInputs(t *testing.T) {
	base := accounting.DepreciationInput{
		AcquisitionCost:  d("1000"),
		ResidualValue:    d("0"),
		UsefulLifeYears:  3,
		Method:           domain.MethodLinear,
		Rate:             d("0.3"),
		CurrentBookValue: d("1000"),
	}

	tests := []struct {
		name   string
		mutate func(*accounting.DepreciationInput)
	}{
		{"negative cost", func(in *accounting.DepreciationInput) { in.AcquisitionCost = d("-1") }},
		{"negative residual", func(in *accounting.DepreciationInput) { in.ResidualValue = d("-1") }},
		{"negative book value", func(in *accounting.DepreciationInput) { in.CurrentBookValue = d("-1") }},
		{"negative rate", func(in *accounting.DepreciationInput) { in.Rate = d("-0.1") }},
		{"zero life", func(in *accounting.DepreciationInput) { in.UsefulLifeYears = 0 }},
		{"negative periods", func(in *accounting.DepreciationInput) { in.PeriodsElapsed = -1 }},
		{"unknown method", func(in *accounting.DepreciationInput) { in.Method = "SUM_OF_YEARS" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := accounting.CalculateDepreciation(in)
			assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		})
	}
}

func TestCalculateDepreciation_SubUnitAmountsStillProgress(t *testing.T) {
	tests := []struct {
		name string
		in   accounting.DepreciationInput
		want string
	}{
		{
			name: "linear annual below one Rappen",
			in: accounting.DepreciationInput{
				AcquisitionCost:  d("0.02"),
				UsefulLifeYears:  5,
				Method:           domain.MethodLinear,
				CurrentBookValue: d("0.02"),
			},
			want: "0.01",
		},
		{
			name: "declining amount below one Rappen switches to the remainder",
			in: accounting.DepreciationInput{
				AcquisitionCost:  d("1"),
				UsefulLifeYears:  50,
				Method:           domain.MethodDecliningBalance,
				Rate:             d("0.001"),
				CurrentBookValue: d("1"),
				PeriodsElapsed:   2,
			},
			want: "1",
		},
		{
			name: "floor never passes the residual",
			in: accounting.DepreciationInput{
				AcquisitionCost:  d("0.05"),
				ResidualValue:    d("0.04"),
				UsefulLifeYears:  5,
				Method:           domain.MethodLinear,
				CurrentBookValue: d("0.045"),
				PeriodsElapsed:   1,
			},
			want: "0.005",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := accounting.CalculateDepreciation(tt.in)
			require.NoError(t, err)
			assert.True(t, amount.Equal(d(tt.want)), "got %s", amount)
		})
	}
}
