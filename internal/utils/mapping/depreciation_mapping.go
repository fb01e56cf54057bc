package mapping

import (
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/models"
)

// ToModelAssetDepreciation converts a domain AssetDepreciation to a model AssetDepreciation
func ToModelAssetDepreciation(d domain.AssetDepreciation) models.AssetDepreciation {
	return models.AssetDepreciation{
		DepreciationID:  d.DepreciationID,
		WorkplaceID:     d.WorkplaceID,
		AssetID:         d.AssetID,
		FiscalYear:      d.FiscalYear,
		Amount:          d.Amount,
		BookValueBefore: d.BookValueBefore,
		BookValueAfter:  d.BookValueAfter,
		IsPosted:        d.IsPosted,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssetDepreciation converts a model AssetDepreciation to a domain AssetDepreciation
func ToDomainAssetDepreciation(m models.AssetDepreciation) domain.AssetDepreciation {
	return domain.AssetDepreciation{
		DepreciationID:  m.DepreciationID,
		WorkplaceID:     m.WorkplaceID,
		AssetID:         m.AssetID,
		FiscalYear:      m.FiscalYear,
		Amount:          m.Amount,
		BookValueBefore: m.BookValueBefore,
		BookValueAfter:  m.BookValueAfter,
		IsPosted:        m.IsPosted,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssetDepreciationSlice converts a slice of model entries to domain entries
func ToDomainAssetDepreciationSlice(ms []models.AssetDepreciation) []domain.AssetDepreciation {
	ds := make([]domain.AssetDepreciation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssetDepreciation(m)
	}
	return ds
}
