// Package memory provides in-memory implementations of the repository ports
// for development without a database and for service tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_assets_app/internal/core/ports/repositories"
)

type entryKey struct {
	assetID    string
	fiscalYear int
}

type memberKey struct {
	userID      string
	workplaceID string
}

// Store keeps every entity behind a single RWMutex, so each method is atomic
// with respect to every other.
type Store struct {
	mu          sync.RWMutex
	assets      map[string]domain.FixedAsset
	entries     map[entryKey]domain.AssetDepreciation
	sequences   map[string]int64
	workplaces  map[string]domain.Workplace
	memberships map[memberKey]domain.UserWorkplace
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		assets:      make(map[string]domain.FixedAsset),
		entries:     make(map[entryKey]domain.AssetDepreciation),
		sequences:   make(map[string]int64),
		workplaces:  make(map[string]domain.Workplace),
		memberships: make(map[memberKey]domain.UserWorkplace),
	}
}

// NewRepositoryProvider wires one Store behind every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FixedAssetRepo:   s,
		DepreciationRepo: s,
		WorkplaceRepo:    s,
	}
}

var (
	_ portsrepo.FixedAssetRepositoryFacade   = (*Store)(nil)
	_ portsrepo.DepreciationRepositoryFacade = (*Store)(nil)
	_ portsrepo.WorkplaceRepositoryFacade    = (*Store)(nil)
)

// --- fixed assets ---

func (s *Store) SaveAsset(_ context.Context, asset domain.FixedAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[asset.AssetID]; exists {
		return fmt.Errorf("%w: asset %s already exists", apperrors.ErrDuplicate, asset.AssetID)
	}
	for _, a := range s.assets {
		if a.WorkplaceID == asset.WorkplaceID && a.AssetNumber == asset.AssetNumber {
			return fmt.Errorf("%w: asset number %s already used", apperrors.ErrDuplicate, asset.AssetNumber)
		}
	}
	s.assets[asset.AssetID] = asset
	return nil
}

func (s *Store) FindAssetByID(_ context.Context, assetID string) (*domain.FixedAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, ok := s.assets[assetID]
	if !ok {
		return nil, apperrors.NewNotFoundError("fixed asset " + assetID)
	}
	return &asset, nil
}

func (s *Store) ListAssets(_ context.Context, workplaceID string, filter domain.AssetFilter) ([]domain.FixedAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.collectLocked(func(a domain.FixedAsset) bool {
		if a.WorkplaceID != workplaceID {
			return false
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, a.Status) {
			return false
		}
		return filter.Category == "" || a.Category == filter.Category
	})

	if filter.Offset >= len(matched) {
		return []domain.FixedAsset{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (s *Store) FindActiveByWorkplace(_ context.Context, workplaceID string, cutoff time.Time) ([]domain.FixedAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(func(a domain.FixedAsset) bool {
		return a.WorkplaceID == workplaceID &&
			a.Status == domain.StatusActive &&
			a.AcquisitionDate.Before(cutoff)
	}), nil
}

func (s *Store) ListAssetsByStatus(_ context.Context, workplaceID string, statuses []domain.AssetStatus) ([]domain.FixedAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(func(a domain.FixedAsset) bool {
		return a.WorkplaceID == workplaceID && slices.Contains(statuses, a.Status)
	}), nil
}

// collectLocked returns matching assets ordered by asset number.
func (s *Store) collectLocked(match func(domain.FixedAsset) bool) []domain.FixedAsset {
	out := make([]domain.FixedAsset, 0)
	for _, a := range s.assets {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AssetNumber != out[j].AssetNumber {
			return out[i].AssetNumber < out[j].AssetNumber
		}
		return out[i].AssetID < out[j].AssetID
	})
	return out
}

func (s *Store) UpdateAssetLocked(_ context.Context, assetID string, mutate func(*domain.FixedAsset) error) (*domain.FixedAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[assetID]
	if !ok {
		return nil, apperrors.NewNotFoundError("fixed asset " + assetID)
	}
	if err := mutate(&asset); err != nil {
		return nil, err
	}
	s.assets[assetID] = asset
	return &asset, nil
}

func (s *Store) MarkFullyDepreciated(_ context.Context, assetID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[assetID]
	if !ok {
		return apperrors.NewNotFoundError("fixed asset " + assetID)
	}
	if asset.Status != domain.StatusActive {
		return fmt.Errorf("%w: asset %s is %s", apperrors.ErrConflict, assetID, asset.Status)
	}
	asset.Status = domain.StatusFullyDepreciated
	asset.Touch(userID, now)
	s.assets[assetID] = asset
	return nil
}

func (s *Store) NextAssetNumber(_ context.Context, workplaceID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sequences[workplaceID]++
	return s.sequences[workplaceID], nil
}

// --- depreciation entries ---

func (s *Store) FindDepreciationByAssetAndYear(_ context.Context, assetID string, fiscalYear int) (*domain.AssetDepreciation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[entryKey{assetID, fiscalYear}]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("depreciation for asset %s in %d", assetID, fiscalYear))
	}
	return &entry, nil
}

func (s *Store) CountDepreciationsByAsset(_ context.Context, assetID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for k := range s.entries {
		if k.assetID == assetID {
			count++
		}
	}
	return count, nil
}

func (s *Store) ListDepreciationsByAsset(_ context.Context, assetID string) ([]domain.AssetDepreciation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AssetDepreciation, 0)
	for k, e := range s.entries {
		if k.assetID == assetID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FiscalYear < out[j].FiscalYear })
	return out, nil
}

func (s *Store) InsertDepreciationIfAbsent(_ context.Context, entry domain.AssetDepreciation, newStatus domain.AssetStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[entry.AssetID]
	if !ok {
		return apperrors.NewNotFoundError("fixed asset " + entry.AssetID)
	}
	k := entryKey{entry.AssetID, entry.FiscalYear}
	if _, exists := s.entries[k]; exists {
		return fmt.Errorf("%w: asset %s already has an entry for %d", apperrors.ErrDuplicate, entry.AssetID, entry.FiscalYear)
	}
	if asset.Status != domain.StatusActive || !asset.CurrentBookValue.Equal(entry.BookValueBefore) {
		return fmt.Errorf("%w: asset %s changed since it was read", apperrors.ErrConflict, entry.AssetID)
	}

	s.entries[k] = entry
	asset.CurrentBookValue = entry.BookValueAfter
	asset.Status = newStatus
	asset.Touch(entry.CreatedBy, entry.CreatedAt)
	s.assets[entry.AssetID] = asset
	return nil
}

func (s *Store) MarkYearPosted(_ context.Context, workplaceID string, fiscalYear int, userID string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posted := 0
	for k, e := range s.entries {
		if e.WorkplaceID != workplaceID || e.FiscalYear != fiscalYear || e.IsPosted {
			continue
		}
		e.IsPosted = true
		e.Touch(userID, now)
		s.entries[k] = e
		posted++
	}
	return posted, nil
}

// --- workplaces ---

// SaveWorkplace registers a workplace. Used to seed development data and tests.
func (s *Store) SaveWorkplace(_ context.Context, workplace domain.Workplace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workplaces[workplace.WorkplaceID] = workplace
	return nil
}

func (s *Store) FindWorkplaceByID(_ context.Context, workplaceID string) (*domain.Workplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.workplaces[workplaceID]
	if !ok {
		return nil, apperrors.NewNotFoundError("workplace " + workplaceID)
	}
	return &w, nil
}

func (s *Store) AddUserToWorkplace(_ context.Context, membership domain.UserWorkplace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memberships[memberKey{membership.UserID, membership.WorkplaceID}] = membership
	return nil
}

func (s *Store) FindUserWorkplaceRole(_ context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.memberships[memberKey{userID, workplaceID}]
	if !ok {
		return nil, apperrors.NewNotFoundError("membership")
	}
	return &m, nil
}
