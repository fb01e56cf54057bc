package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_assets_app/internal/models"
	"github.com/SscSPs/fixed_assets_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkplaceRepository struct {
	BaseRepository
}

// newPgxWorkplaceRepository creates a new repository for workplace data.
func newPgxWorkplaceRepository(pool *pgxpool.Pool) *PgxWorkplaceRepository {
	return &PgxWorkplaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkplaceRepository implements portsrepo.WorkplaceRepositoryFacade
var _ portsrepo.WorkplaceRepositoryFacade = (*PgxWorkplaceRepository)(nil)

// SaveWorkplace inserts a new workplace.
func (r *PgxWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace) error {
	m := mapping.ToModelWorkplace(workplace)
	query := `
		INSERT INTO workplaces (
			workplace_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WorkplaceID, m.Name, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: workplace ID %s already exists", apperrors.ErrDuplicate, m.WorkplaceID)
		}
		return apperrors.NewAppError(500, "failed to save workplace "+m.WorkplaceID, err)
	}
	return nil
}

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	query := `
		SELECT workplace_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM workplaces
		WHERE workplace_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workplace "+workplaceID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Workplace])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("workplace " + workplaceID)
		}
		return nil, apperrors.NewAppError(500, "failed to collect workplace row", err)
	}
	w := mapping.ToDomainWorkplace(m)
	return &w, nil
}

func (r *PgxWorkplaceRepository) AddUserToWorkplace(ctx context.Context, membership domain.UserWorkplace) error {
	query := `
		INSERT INTO user_workplaces (user_id, workplace_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, workplace_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: Add user or update their role if they already exist
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.WorkplaceID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in workplace "+membership.WorkplaceID, err)
	}
	return nil
}

func (r *PgxWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	query := `
		SELECT user_id, workplace_id, role, joined_at
		FROM user_workplaces
		WHERE user_id = $1 AND workplace_id = $2;
	`
	var m models.UserWorkplace
	err := r.Pool.QueryRow(ctx, query, userID, workplaceID).Scan(
		&m.UserID,
		&m.WorkplaceID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user " + userID + " in workplace " + workplaceID)
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID+" workplace role in "+workplaceID, err)
	}
	uw := mapping.ToDomainUserWorkplace(m)
	return &uw, nil
}
