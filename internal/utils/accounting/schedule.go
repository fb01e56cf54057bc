package accounting

import (
	"iter"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectSchedule lazily yields the depreciation plan of an asset, one row per
// year starting at the acquisition year. It stops after UsefulLifeYears rows or
// as soon as the projected book value reaches the residual value.
//
// posted holds the asset's existing entries keyed by fiscal year; a year with an
// entry is reported COMPLETED with the actual amount. The projected book value is
// always advanced by the projected amount, so the plan does not re-forecast from
// actuals that deviated from it.
//
// Each range over the returned sequence recomputes the plan from scratch.
func ProjectSchedule(asset domain.FixedAsset, posted map[int]domain.AssetDepreciation, currentYear int) iter.Seq2[domain.ScheduleRow, error] {
	return func(yield func(domain.ScheduleRow, error) bool) {
		bookValue := asset.AcquisitionCost
		startYear := asset.AcquisitionYear()

		for period := 0; period < asset.UsefulLifeYears; period++ {
			if bookValue.LessThanOrEqual(asset.ResidualValue) {
				return
			}

			amount, err := CalculateDepreciation(InputFromAsset(asset, bookValue, period))
			if err != nil {
				yield(domain.ScheduleRow{}, err)
				return
			}
			if amount.IsZero() {
				return
			}

			year := startYear + period
			row := domain.ScheduleRow{
				Period:           period + 1,
				FiscalYear:       year,
				BookValueStart:   bookValue,
				ProjectedAmount:  amount,
				BookValueEnd:     bookValue.Sub(amount),
				AmountForDisplay: amount,
			}
			switch entry, ok := posted[year]; {
			case ok:
				actual := entry.Amount
				row.Status = domain.RowCompleted
				row.ActualAmount = &actual
				row.ActualIsPosted = entry.IsPosted
				row.AmountForDisplay = actual
			case year <= currentYear:
				row.Status = domain.RowPending
			default:
				row.Status = domain.RowPlanned
			}

			if !yield(row, nil) {
				return
			}
			bookValue = row.BookValueEnd
		}
	}
}

// BuildSchedule drains ProjectSchedule into a DepreciationSchedule.
func BuildSchedule(asset domain.FixedAsset, entries []domain.AssetDepreciation, currentYear int) (*domain.DepreciationSchedule, error) {
	posted := make(map[int]domain.AssetDepreciation, len(entries))
	for _, e := range entries {
		posted[e.FiscalYear] = e
	}

	schedule := &domain.DepreciationSchedule{
		Asset:                    asset,
		Rows:                     make([]domain.ScheduleRow, 0, asset.UsefulLifeYears),
		TotalPlannedDepreciation: decimal.Zero,
	}
	for row, err := range ProjectSchedule(asset, posted, currentYear) {
		if err != nil {
			return nil, err
		}
		schedule.Rows = append(schedule.Rows, row)
		schedule.TotalPlannedDepreciation = schedule.TotalPlannedDepreciation.Add(row.ProjectedAmount)
	}
	return schedule, nil
}
