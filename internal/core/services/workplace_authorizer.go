package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
)

// workplaceAuthorizer implements the WorkplaceAuthorizerSvc interface
type workplaceAuthorizer struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
}

// NewWorkplaceAuthorizer creates an authorizer backed by workplace memberships.
func NewWorkplaceAuthorizer(workplaceRepo portsrepo.WorkplaceRepositoryFacade) portssvc.WorkplaceAuthorizerSvc {
	return &workplaceAuthorizer{workplaceRepo: workplaceRepo}
}

var _ portssvc.WorkplaceAuthorizerSvc = (*workplaceAuthorizer)(nil)

// AuthorizeUserAction checks if a user has required permissions for a workplace
func (s *workplaceAuthorizer) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workplace",
				slog.String("workplace_id", workplaceID))
		}
		return err
	}
	if !workplace.IsActive {
		s.LogDebug(ctx, "Workplace is disabled",
			slog.String("workplace_id", workplaceID))
		return apperrors.ErrForbidden
	}

	membership, err := s.workplaceRepo.FindUserWorkplaceRole(ctx, userID, workplaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workplace",
				slog.String("user_id", userID),
				slog.String("workplace_id", workplaceID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user workplace role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return err
	}

	if !hasRequiredRole(membership.Role, requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}

func hasRequiredRole(userRole, requiredRole domain.UserWorkplaceRole) bool {
	switch requiredRole {
	case domain.RoleReadOnly:
		return userRole == domain.RoleReadOnly || userRole == domain.RoleMember || userRole == domain.RoleAdmin
	case domain.RoleMember:
		return userRole == domain.RoleMember || userRole == domain.RoleAdmin
	case domain.RoleAdmin:
		return userRole == domain.RoleAdmin
	default:
		return false
	}
}
