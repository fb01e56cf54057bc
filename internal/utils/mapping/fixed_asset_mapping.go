package mapping

import (
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelFixedAsset converts a domain FixedAsset to a model FixedAsset
func ToModelFixedAsset(d domain.FixedAsset) models.FixedAsset {
	return models.FixedAsset{
		AssetID:            d.AssetID,
		WorkplaceID:        d.WorkplaceID,
		AssetNumber:        d.AssetNumber,
		Name:               d.Name,
		Description:        d.Description,
		Category:           string(d.Category),
		Location:           d.Location,
		SerialNumber:       d.SerialNumber,
		Supplier:           d.Supplier,
		AcquisitionDate:    d.AcquisitionDate,
		AcquisitionCost:    d.AcquisitionCost,
		ResidualValue:      d.ResidualValue,
		UsefulLifeYears:    d.UsefulLifeYears,
		DepreciationMethod: string(d.DepreciationMethod),
		DepreciationRate:   d.DepreciationRate,
		CurrentBookValue:   d.CurrentBookValue,
		Status:             string(d.Status),
		DisposalDate:       d.DisposalDate,
		SalePrice:          toNullDecimal(d.SalePrice),
		GainLoss:           toNullDecimal(d.GainLoss),
		DisposalReason:     d.DisposalReason,
		DisposalNotes:      d.DisposalNotes,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFixedAsset converts a model FixedAsset to a domain FixedAsset
func ToDomainFixedAsset(m models.FixedAsset) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:            m.AssetID,
		WorkplaceID:        m.WorkplaceID,
		AssetNumber:        m.AssetNumber,
		Name:               m.Name,
		Description:        m.Description,
		Category:           domain.AssetCategory(m.Category),
		Location:           m.Location,
		SerialNumber:       m.SerialNumber,
		Supplier:           m.Supplier,
		AcquisitionDate:    m.AcquisitionDate.UTC(),
		AcquisitionCost:    m.AcquisitionCost,
		ResidualValue:      m.ResidualValue,
		UsefulLifeYears:    m.UsefulLifeYears,
		DepreciationMethod: domain.DepreciationMethod(m.DepreciationMethod),
		DepreciationRate:   m.DepreciationRate,
		CurrentBookValue:   m.CurrentBookValue,
		Status:             domain.AssetStatus(m.Status),
		DisposalDate:       m.DisposalDate,
		SalePrice:          fromNullDecimal(m.SalePrice),
		GainLoss:           fromNullDecimal(m.GainLoss),
		DisposalReason:     m.DisposalReason,
		DisposalNotes:      m.DisposalNotes,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFixedAssetSlice converts a slice of model FixedAssets to a slice of domain FixedAssets
func ToDomainFixedAssetSlice(ms []models.FixedAsset) []domain.FixedAsset {
	ds := make([]domain.FixedAsset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFixedAsset(m)
	}
	return ds
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
