package domain

import "github.com/shopspring/decimal"

// RunOutcome classifies what happened to one asset during a batch run.
type RunOutcome string

const (
	OutcomeCalculated RunOutcome = "CALCULATED"
	OutcomeSkipped    RunOutcome = "SKIPPED"
	OutcomeFailed     RunOutcome = "FAILED"
)

// Reasons attached to skipped or failed outcomes.
const (
	ReasonAlreadyProcessed  = "already processed"
	ReasonFullyDepreciated  = "fully depreciated"
	ReasonConcurrentUpdate  = "asset changed during run"
	ReasonPersistenceFailed = "persistence failure"
	ReasonInvalidParameters = "invalid depreciation parameters"
)

// AssetRunResult reports the outcome of a batch run for a single asset.
type AssetRunResult struct {
	AssetID         string           `json:"assetID"`
	AssetNumber     string           `json:"assetNumber"`
	Outcome         RunOutcome       `json:"outcome"`
	Reason          string           `json:"reason,omitempty"`
	Amount          decimal.Decimal  `json:"amount"`
	BookValueBefore *decimal.Decimal `json:"bookValueBefore,omitempty"`
	BookValueAfter  *decimal.Decimal `json:"bookValueAfter,omitempty"`
	Error           string           `json:"error,omitempty"`
}

// DepreciationRun summarises one yearly batch run for a workplace.
type DepreciationRun struct {
	WorkplaceID          string           `json:"workplaceID"`
	FiscalYear           int              `json:"fiscalYear"`
	AssetsProcessed      int              `json:"assetsProcessed"`
	DepreciationsCreated int              `json:"depreciationsCreated"`
	AssetsFailed         int              `json:"assetsFailed"`
	TotalDepreciation    decimal.Decimal  `json:"totalDepreciation"`
	Results              []AssetRunResult `json:"results"`
}
