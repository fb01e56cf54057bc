package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_assets_app/internal/core/ports/services"
	"github.com/SscSPs/fixed_assets_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkplaceAuthorizer portssvc.WorkplaceAuthorizerSvc
	Clock               func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// AuthorizeUser checks if a user has the required role for a workplace
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	if s.WorkplaceAuthorizer != nil {
		return s.WorkplaceAuthorizer.AuthorizeUserAction(ctx, userID, workplaceID, requiredRole)
	}
	// Without an authorizer (local development, tests) every action is allowed.
	s.LogDebug(ctx, "No workplace authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("workplace_id", workplaceID),
		slog.String("required_role", string(requiredRole)))
	return nil
}

// findWorkplaceAsset loads an asset and hides assets of other workplaces behind ErrNotFound.
func (s *BaseService) findWorkplaceAsset(ctx context.Context, repo portsrepo.FixedAssetReader, workplaceID, assetID string) (*domain.FixedAsset, error) {
	asset, err := repo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fixed asset by ID",
				slog.String("asset_id", assetID))
		}
		return nil, err
	}

	if asset.WorkplaceID != workplaceID {
		s.LogDebug(ctx, "Fixed asset found but belongs to different workplace",
			slog.String("asset_id", assetID),
			slog.String("asset_workplace", asset.WorkplaceID),
			slog.String("requested_workplace", workplaceID))
		return nil, apperrors.NewNotFoundError("fixed asset " + assetID)
	}
	return asset, nil
}
