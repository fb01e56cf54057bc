package repositories

import (
	"context"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
)

// WorkplaceReader defines read operations for workplace data
type WorkplaceReader interface {
	// FindWorkplaceByID retrieves a specific workplace by its ID.
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)
}

// WorkplaceMembershipManager defines operations for managing workplace memberships
type WorkplaceMembershipManager interface {
	// AddUserToWorkplace adds a user to a workplace with a specific role.
	AddUserToWorkplace(ctx context.Context, membership domain.UserWorkplace) error

	// FindUserWorkplaceRole retrieves the role of a user in a workplace.
	FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error)
}

// WorkplaceRepositoryFacade combines all workplace-related repository interfaces
type WorkplaceRepositoryFacade interface {
	WorkplaceReader
	WorkplaceMembershipManager
}
