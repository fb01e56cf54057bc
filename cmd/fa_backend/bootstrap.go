package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
)

const (
	devWorkplaceID = "dev-workplace"
	devAdminUserID = "dev-user"
	devTokenTTL    = 24 * time.Hour
)

// workplaceSeeder is implemented by both the in-memory store and the pgsql workplace repository.
type workplaceSeeder interface {
	SaveWorkplace(ctx context.Context, workplace domain.Workplace) error
	AddUserToWorkplace(ctx context.Context, membership domain.UserWorkplace) error
}

// seedWorkplace creates the workplace if missing and makes userID its admin.
func seedWorkplace(ctx context.Context, repo workplaceSeeder, workplaceID, userID string, logger *slog.Logger) error {
	now := time.Now().UTC()
	workplace := domain.Workplace{
		WorkplaceID: workplaceID,
		Name:        workplaceID,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if err := repo.SaveWorkplace(ctx, workplace); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return fmt.Errorf("failed to seed workplace %s: %w", workplaceID, err)
	}

	membership := domain.UserWorkplace{
		UserID:      userID,
		WorkplaceID: workplaceID,
		Role:        domain.RoleAdmin,
		JoinedAt:    now,
	}
	if err := repo.AddUserToWorkplace(ctx, membership); err != nil {
		return fmt.Errorf("failed to add %s to workplace %s: %w", userID, workplaceID, err)
	}

	logger.Info("Workplace seeded", slog.String("workplace_id", workplaceID), slog.String("admin_user_id", userID))
	return nil
}
