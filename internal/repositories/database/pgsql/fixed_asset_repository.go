package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_assets_app/internal/models"
	"github.com/SscSPs/fixed_assets_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFixedAssetRepository struct {
	BaseRepository
}

// newPgxFixedAssetRepository creates a new repository for fixed asset data.
func newPgxFixedAssetRepository(pool *pgxpool.Pool) *PgxFixedAssetRepository {
	return &PgxFixedAssetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FixedAssetRepositoryFacade = (*PgxFixedAssetRepository)(nil)

const fullAssetSelectQuery = `
SELECT
	a.asset_id, a.workplace_id, a.asset_number, a.name, a.description, a.category,
	a.location, a.serial_number, a.supplier, a.acquisition_date, a.acquisition_cost,
	a.residual_value, a.useful_life_years, a.depreciation_method, a.depreciation_rate,
	a.current_book_value, a.status, a.disposal_date, a.sale_price, a.gain_loss,
	a.disposal_reason, a.disposal_notes,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM fixed_assets a
`

// getAssets runs the shared select with the given filter and collects domain assets.
func getAssets(ctx context.Context, q Querier, filterQuery string, args ...any) ([]domain.FixedAsset, error) {
	rows, err := q.Query(ctx, fullAssetSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fixed assets", err)
	}
	defer rows.Close()

	modelAssets, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FixedAsset])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect fixed asset rows", err)
	}
	return mapping.ToDomainFixedAssetSlice(modelAssets), nil
}

func (r *PgxFixedAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	m := mapping.ToModelFixedAsset(asset)
	query := `
		INSERT INTO fixed_assets (
			asset_id, workplace_id, asset_number, name, description, category,
			location, serial_number, supplier, acquisition_date, acquisition_cost,
			residual_value, useful_life_years, depreciation_method, depreciation_rate,
			current_book_value, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AssetID, m.WorkplaceID, m.AssetNumber, m.Name, m.Description, m.Category,
		m.Location, m.SerialNumber, m.Supplier, m.AcquisitionDate, m.AcquisitionCost,
		m.ResidualValue, m.UsefulLifeYears, m.DepreciationMethod, m.DepreciationRate,
		m.CurrentBookValue, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: asset %s (%s) already exists", apperrors.ErrDuplicate, m.AssetID, m.AssetNumber)
		}
		return apperrors.NewAppError(500, "failed to save fixed asset "+m.AssetID, err)
	}
	return nil
}

func (r *PgxFixedAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	assets, err := getAssets(ctx, r.Pool, `WHERE a.asset_id = $1`, assetID)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, apperrors.NewNotFoundError("fixed asset " + assetID)
	}
	return &assets[0], nil
}

func (r *PgxFixedAssetRepository) ListAssets(ctx context.Context, workplaceID string, filter domain.AssetFilter) ([]domain.FixedAsset, error) {
	conditions := []string{"a.workplace_id = $1"}
	args := []any{workplaceID}

	if len(filter.Statuses) > 0 {
		args = append(args, statusStrings(filter.Statuses))
		conditions = append(conditions, fmt.Sprintf("a.status = ANY($%d)", len(args)))
	}
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		conditions = append(conditions, fmt.Sprintf("a.category = $%d", len(args)))
	}

	query := "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY a.asset_number, a.asset_id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return getAssets(ctx, r.Pool, query, args...)
}

func (r *PgxFixedAssetRepository) FindActiveByWorkplace(ctx context.Context, workplaceID string, cutoff time.Time) ([]domain.FixedAsset, error) {
	query := `WHERE a.workplace_id = $1 AND a.status = $2 AND a.acquisition_date < $3 ORDER BY a.asset_number, a.asset_id`
	return getAssets(ctx, r.Pool, query, workplaceID, string(domain.StatusActive), cutoff)
}

func (r *PgxFixedAssetRepository) ListAssetsByStatus(ctx context.Context, workplaceID string, statuses []domain.AssetStatus) ([]domain.FixedAsset, error) {
	query := `WHERE a.workplace_id = $1 AND a.status = ANY($2) ORDER BY a.asset_number, a.asset_id`
	return getAssets(ctx, r.Pool, query, workplaceID, statusStrings(statuses))
}

func (r *PgxFixedAssetRepository) UpdateAssetLocked(ctx context.Context, assetID string, mutate func(*domain.FixedAsset) error) (*domain.FixedAsset, error) {
	var updated domain.FixedAsset
	err := r.WithTransaction(ctx, func(tx pgx.Tx) error {
		assets, err := getAssets(ctx, tx, `WHERE a.asset_id = $1 FOR UPDATE`, assetID)
		if err != nil {
			return err
		}
		if len(assets) == 0 {
			return apperrors.NewNotFoundError("fixed asset " + assetID)
		}

		updated = assets[0]
		if err := mutate(&updated); err != nil {
			return err
		}

		m := mapping.ToModelFixedAsset(updated)
		query := `
			UPDATE fixed_assets SET
				name = $2, description = $3, category = $4, location = $5,
				serial_number = $6, supplier = $7, current_book_value = $8, status = $9,
				disposal_date = $10, sale_price = $11, gain_loss = $12,
				disposal_reason = $13, disposal_notes = $14,
				last_updated_at = $15, last_updated_by = $16
			WHERE asset_id = $1;
		`
		_, err = tx.Exec(ctx, query,
			m.AssetID, m.Name, m.Description, m.Category, m.Location,
			m.SerialNumber, m.Supplier, m.CurrentBookValue, m.Status,
			m.DisposalDate, m.SalePrice, m.GainLoss,
			m.DisposalReason, m.DisposalNotes,
			m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update fixed asset "+assetID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PgxFixedAssetRepository) MarkFullyDepreciated(ctx context.Context, assetID string, userID string, now time.Time) error {
	query := `
		UPDATE fixed_assets
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE asset_id = $1 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, assetID, string(domain.StatusFullyDepreciated), now, userID, string(domain.StatusActive))
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark fixed asset "+assetID+" fully depreciated", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var status string
	err = r.Pool.QueryRow(ctx, `SELECT status FROM fixed_assets WHERE asset_id = $1`, assetID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("fixed asset " + assetID)
		}
		return apperrors.NewAppError(500, "failed to read fixed asset status "+assetID, err)
	}
	return fmt.Errorf("%w: asset %s is %s", apperrors.ErrConflict, assetID, status)
}

func (r *PgxFixedAssetRepository) NextAssetNumber(ctx context.Context, workplaceID string) (int64, error) {
	query := `
		INSERT INTO asset_number_sequences (workplace_id, last_value)
		VALUES ($1, 1)
		ON CONFLICT (workplace_id) DO UPDATE SET last_value = asset_number_sequences.last_value + 1
		RETURNING last_value;
	`
	var next int64
	if err := r.Pool.QueryRow(ctx, query, workplaceID).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate asset number for workplace "+workplaceID, err)
	}
	return next, nil
}

func statusStrings(statuses []domain.AssetStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
