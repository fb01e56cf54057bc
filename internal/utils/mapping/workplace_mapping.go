package mapping

import (
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/models"
)

// ToModelWorkplace converts a domain Workplace to a model Workplace
func ToModelWorkplace(d domain.Workplace) models.Workplace {
	return models.Workplace{
		WorkplaceID: d.WorkplaceID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkplace converts a model Workplace to a domain Workplace
func ToDomainWorkplace(m models.Workplace) domain.Workplace {
	return domain.Workplace{
		WorkplaceID: m.WorkplaceID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserWorkplace converts a model UserWorkplace to a domain UserWorkplace
func ToDomainUserWorkplace(m models.UserWorkplace) domain.UserWorkplace {
	return domain.UserWorkplace{
		UserID:      m.UserID,
		WorkplaceID: m.WorkplaceID,
		Role:        domain.UserWorkplaceRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}
