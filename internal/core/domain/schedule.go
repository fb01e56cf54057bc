package domain

import "github.com/shopspring/decimal"

// ScheduleRowStatus says whether a projected year has been booked yet.
type ScheduleRowStatus string

const (
	RowCompleted ScheduleRowStatus = "COMPLETED" // an entry exists for the year
	RowPending   ScheduleRowStatus = "PENDING"   // year is current or past, no entry yet
	RowPlanned   ScheduleRowStatus = "PLANNED"   // future year
)

// ScheduleRow is one year of a projected depreciation plan.
type ScheduleRow struct {
	Period           int               `json:"period"` // 1-based year of useful life
	FiscalYear       int               `json:"fiscalYear"`
	BookValueStart   decimal.Decimal   `json:"bookValueStart"`
	ProjectedAmount  decimal.Decimal   `json:"projectedAmount"`
	BookValueEnd     decimal.Decimal   `json:"bookValueEnd"`
	Status           ScheduleRowStatus `json:"status"`
	ActualAmount     *decimal.Decimal  `json:"actualAmount,omitempty"`
	ActualIsPosted   bool              `json:"actualIsPosted"`
	AmountForDisplay decimal.Decimal   `json:"amount"` // actual when completed, projected otherwise
}

// DepreciationSchedule is the full plan for one asset.
type DepreciationSchedule struct {
	Asset                    FixedAsset      `json:"asset"`
	Rows                     []ScheduleRow   `json:"rows"`
	TotalPlannedDepreciation decimal.Decimal `json:"totalPlannedDepreciation"`
}
