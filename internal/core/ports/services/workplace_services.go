package services

import (
	"context"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
)

// WorkplaceAuthorizerSvc defines operations for workplace authorization
type WorkplaceAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a workplace.
	AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error
}
