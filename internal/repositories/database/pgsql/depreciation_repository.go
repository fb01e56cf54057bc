package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_assets_app/internal/models"
	"github.com/SscSPs/fixed_assets_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxDepreciationRepository struct {
	BaseRepository
}

// newPgxDepreciationRepository creates a new repository for depreciation entries.
func newPgxDepreciationRepository(pool *pgxpool.Pool) *PgxDepreciationRepository {
	return &PgxDepreciationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DepreciationRepositoryFacade = (*PgxDepreciationRepository)(nil)

const fullDepreciationSelectQuery = `
SELECT
	d.depreciation_id, d.workplace_id, d.asset_id, d.fiscal_year, d.amount,
	d.book_value_before, d.book_value_after, d.is_posted,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
FROM asset_depreciations d
`

func (r *PgxDepreciationRepository) getDepreciations(ctx context.Context, filterQuery string, args ...any) ([]domain.AssetDepreciation, error) {
	rows, err := r.Pool.Query(ctx, fullDepreciationSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query depreciation entries", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AssetDepreciation])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect depreciation rows", err)
	}
	return mapping.ToDomainAssetDepreciationSlice(modelEntries), nil
}

func (r *PgxDepreciationRepository) FindDepreciationByAssetAndYear(ctx context.Context, assetID string, fiscalYear int) (*domain.AssetDepreciation, error) {
	entries, err := r.getDepreciations(ctx, `WHERE d.asset_id = $1 AND d.fiscal_year = $2`, assetID, fiscalYear)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("depreciation for asset %s in %d", assetID, fiscalYear))
	}
	return &entries[0], nil
}

func (r *PgxDepreciationRepository) CountDepreciationsByAsset(ctx context.Context, assetID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM asset_depreciations WHERE asset_id = $1`, assetID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count depreciation entries for asset "+assetID, err)
	}
	return count, nil
}

func (r *PgxDepreciationRepository) ListDepreciationsByAsset(ctx context.Context, assetID string) ([]domain.AssetDepreciation, error) {
	return r.getDepreciations(ctx, `WHERE d.asset_id = $1 ORDER BY d.fiscal_year`, assetID)
}

func (r *PgxDepreciationRepository) InsertDepreciationIfAbsent(ctx context.Context, entry domain.AssetDepreciation, newStatus domain.AssetStatus) error {
	m := mapping.ToModelAssetDepreciation(entry)

	return r.WithTransaction(ctx, func(tx pgx.Tx) error {
		var status string
		var bookValue decimal.Decimal
		err := tx.QueryRow(ctx,
			`SELECT status, current_book_value FROM fixed_assets WHERE asset_id = $1 FOR UPDATE`,
			m.AssetID,
		).Scan(&status, &bookValue)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("fixed asset " + m.AssetID)
			}
			return apperrors.NewAppError(500, "failed to lock fixed asset "+m.AssetID, err)
		}

		insert := `
			INSERT INTO asset_depreciations (
				depreciation_id, workplace_id, asset_id, fiscal_year, amount,
				book_value_before, book_value_after, is_posted,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (asset_id, fiscal_year) DO NOTHING;
		`
		tag, err := tx.Exec(ctx, insert,
			m.DepreciationID, m.WorkplaceID, m.AssetID, m.FiscalYear, m.Amount,
			m.BookValueBefore, m.BookValueAfter, m.IsPosted,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert depreciation entry for asset "+m.AssetID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: asset %s already has an entry for %d", apperrors.ErrDuplicate, m.AssetID, m.FiscalYear)
		}

		if status != string(domain.StatusActive) || !bookValue.Equal(m.BookValueBefore) {
			return fmt.Errorf("%w: asset %s changed since it was read", apperrors.ErrConflict, m.AssetID)
		}

		_, err = tx.Exec(ctx, `
			UPDATE fixed_assets
			SET current_book_value = $2, status = $3, last_updated_at = $4, last_updated_by = $5
			WHERE asset_id = $1;
		`, m.AssetID, m.BookValueAfter, string(newStatus), m.CreatedAt, m.CreatedBy)
		if err != nil {
			return apperrors.NewAppError(500, "failed to apply depreciation to asset "+m.AssetID, err)
		}
		return nil
	})
}

func (r *PgxDepreciationRepository) MarkYearPosted(ctx context.Context, workplaceID string, fiscalYear int, userID string, now time.Time) (int, error) {
	query := `
		UPDATE asset_depreciations
		SET is_posted = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE workplace_id = $1 AND fiscal_year = $2 AND is_posted = FALSE;
	`
	tag, err := r.Pool.Exec(ctx, query, workplaceID, fiscalYear, now, userID)
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to post depreciation entries of %d", fiscalYear), err)
	}
	return int(tag.RowsAffected()), nil
}
