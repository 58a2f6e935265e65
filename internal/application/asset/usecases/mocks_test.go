package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

// memoryAssetRepository is an in-memory asset.Repository.
type memoryAssetRepository struct {
	assets    map[uint]*asset.Asset
	nextID    uint
	CreateErr error
	updates   int
}

func newMemoryAssetRepository() *memoryAssetRepository {
	return &memoryAssetRepository{assets: make(map[uint]*asset.Asset)}
}

func (m *memoryAssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := a.SetID(m.nextID); err != nil {
		return err
	}
	m.assets[a.ID()] = a
	return nil
}

func (m *memoryAssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	if a, ok := m.assets[id]; ok {
		return a, nil
	}
	return nil, errors.NewNotFoundError("asset not found")
}

func (m *memoryAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	m.updates++
	m.assets[a.ID()] = a
	return nil
}

func (m *memoryAssetRepository) Delete(ctx context.Context, id uint) error {
	delete(m.assets, id)
	return nil
}

func (m *memoryAssetRepository) List(ctx context.Context) ([]*asset.Asset, error) {
	out := make([]*asset.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out, nil
}

func (m *memoryAssetRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	for _, a := range m.assets {
		if a.AssetCode() == code && a.ID() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryAssetRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return 0, nil
}

type memoryHistoryRepository struct {
	entries   map[uint]*asset.HistoryEntry
	nextID    uint
	CreateErr error
}

func newMemoryHistoryRepository() *memoryHistoryRepository {
	return &memoryHistoryRepository{entries: make(map[uint]*asset.HistoryEntry)}
}

func (m *memoryHistoryRepository) Create(ctx context.Context, e *asset.HistoryEntry) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := e.SetID(m.nextID); err != nil {
		return err
	}
	m.entries[e.ID()] = e
	return nil
}

func (m *memoryHistoryRepository) GetByID(ctx context.Context, id uint) (*asset.HistoryEntry, error) {
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, errors.NewNotFoundError("history entry not found")
}

func (m *memoryHistoryRepository) Update(ctx context.Context, e *asset.HistoryEntry) error {
	m.entries[e.ID()] = e
	return nil
}

func (m *memoryHistoryRepository) Delete(ctx context.Context, id uint) error {
	delete(m.entries, id)
	return nil
}

func (m *memoryHistoryRepository) ListByAssetID(ctx context.Context, assetID uint) ([]*asset.HistoryEntry, error) {
	var out []*asset.HistoryEntry
	for _, e := range m.entries {
		if e.AssetID() == assetID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date().Equal(out[j].Date()) {
			return out[i].Date().After(out[j].Date())
		}
		return out[i].ID() > out[j].ID()
	})
	return out, nil
}

func (m *memoryHistoryRepository) actions() []string {
	entries, _ := m.ListByAssetID(context.Background(), 1)
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID() < entries[j].ID() })
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ActionType())
	}
	return out
}

// rollbackTransactor discards repository writes when fn fails by restoring snapshots.
type rollbackTransactor struct {
	assets  *memoryAssetRepository
	history *memoryHistoryRepository
	calls   int
}

func (m *rollbackTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	assets := make(map[uint]*asset.Asset, len(m.assets.assets))
	for k, v := range m.assets.assets {
		assets[k] = v
	}
	entries := make(map[uint]*asset.HistoryEntry, len(m.history.entries))
	for k, v := range m.history.entries {
		entries[k] = v
	}
	if err := fn(ctx); err != nil {
		m.assets.assets = assets
		m.history.entries = entries
		return err
	}
	return nil
}

func testChecker() policy.Checker {
	var rules []policy.Rule
	for _, role := range []authorization.UserRole{authorization.RoleAdmin, authorization.RoleManager, authorization.RoleIT} {
		rules = append(rules,
			policy.Rule{Role: role, Resource: policy.ResourceAsset, Action: policy.ActionRead},
			policy.Rule{Role: role, Resource: policy.ResourceAsset, Action: policy.ActionWrite},
		)
	}
	rules = append(rules, policy.Rule{Role: authorization.RoleHR, Resource: policy.ResourceAsset, Action: policy.ActionRead})
	return policy.NewStaticChecker(rules)
}

func itStaff() policy.Principal {
	return policy.Principal{UserID: 5, Role: authorization.RoleIT}
}

func hrStaff() policy.Principal {
	return policy.Principal{UserID: 6, Role: authorization.RoleHR}
}

func strPtr(s string) *string {
	return &s
}

var purchaseDay = time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)
