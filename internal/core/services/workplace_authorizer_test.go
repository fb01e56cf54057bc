package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/SscSPs/fixed_assets_app/internal/core/services"
	"github.com/SscSPs/fixed_assets_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkplaceAuthorizer_AuthorizeUserAction(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.SaveWorkplace(ctx, domain.Workplace{WorkplaceID: "wp-active", IsActive: true}))
	require.NoError(t, store.SaveWorkplace(ctx, domain.Workplace{WorkplaceID: "wp-disabled", IsActive: false}))
	for user, role := range map[string]domain.UserWorkplaceRole{
		"admin":   domain.RoleAdmin,
		"member":  domain.RoleMember,
		"reader":  domain.RoleReadOnly,
		"removed": domain.RoleRemoved,
	} {
		require.NoError(t, store.AddUserToWorkplace(ctx, domain.UserWorkplace{UserID: user, WorkplaceID: "wp-active", Role: role}))
	}
	require.NoError(t, store.AddUserToWorkplace(ctx, domain.UserWorkplace{UserID: "admin", WorkplaceID: "wp-disabled", Role: domain.RoleAdmin}))

	authorizer := services.NewWorkplaceAuthorizer(store)

	tests := []struct {
		name        string
		userID      string
		workplaceID string
		required    domain.UserWorkplaceRole
		wantErr     error
	}{
		{"admin may post", "admin", "wp-active", domain.RoleAdmin, nil},
		{"member may run", "member", "wp-active", domain.RoleMember, nil},
		{"member may read", "member", "wp-active", domain.RoleReadOnly, nil},
		{"member may not post", "member", "wp-active", domain.RoleAdmin, apperrors.ErrForbidden},
		{"reader may read", "reader", "wp-active", domain.RoleReadOnly, nil},
		{"reader may not run", "reader", "wp-active", domain.RoleMember, apperrors.ErrForbidden},
		{"removed user", "removed", "wp-active", domain.RoleReadOnly, apperrors.ErrForbidden},
		{"stranger", "nobody", "wp-active", domain.RoleReadOnly, apperrors.ErrForbidden},
		{"disabled workplace", "admin", "wp-disabled", domain.RoleReadOnly, apperrors.ErrForbidden},
		{"unknown workplace", "admin", "wp-missing", domain.RoleReadOnly, apperrors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizer.AuthorizeUserAction(ctx, tt.userID, tt.workplaceID, tt.required)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
