package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

// memoryCategoryRepository stores copies so callers cannot mutate persisted rows.
type memoryCategoryRepository struct {
	rows   map[uint]category.Category
	nextID uint
}

func newMemoryCategoryRepository() *memoryCategoryRepository {
	return &memoryCategoryRepository{rows: make(map[uint]category.Category)}
}

func (m *memoryCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	m.nextID++
	if err := c.SetID(m.nextID); err != nil {
		return err
	}
	m.rows[c.ID()] = *c
	return nil
}

func (m *memoryCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, errors.NewNotFoundError("category not found")
	}
	return &c, nil
}

func (m *memoryCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	m.rows[c.ID()] = *c
	return nil
}

func (m *memoryCategoryRepository) Delete(ctx context.Context, id uint) error {
	delete(m.rows, id)
	return nil
}

func (m *memoryCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(m.rows))
	for _, c := range m.rows {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (m *memoryCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	for id, c := range m.rows {
		if id != excludeID && c.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryCategoryRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	for id, c := range m.rows {
		if id != excludeID && c.Code() == code {
			return true, nil
		}
	}
	return false, nil
}

type memoryTicketCategoryRepository struct {
	rows        map[uint]category.TicketCategory
	nextID      uint
	ticketCount map[uint]int64
}

func newMemoryTicketCategoryRepository() *memoryTicketCategoryRepository {
	return &memoryTicketCategoryRepository{
		rows:        make(map[uint]category.TicketCategory),
		ticketCount: make(map[uint]int64),
	}
}

func (m *memoryTicketCategoryRepository) Create(ctx context.Context, c *category.TicketCategory) error {
	m.nextID++
	if err := c.SetID(m.nextID); err != nil {
		return err
	}
	m.rows[c.ID()] = *c
	return nil
}

func (m *memoryTicketCategoryRepository) GetByID(ctx context.Context, id uint) (*category.TicketCategory, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, errors.NewNotFoundError("ticket category not found")
	}
	return &c, nil
}

func (m *memoryTicketCategoryRepository) GetByIDs(ctx context.Context, ids []uint) ([]*category.TicketCategory, error) {
	var out []*category.TicketCategory
	for _, id := range ids {
		if c, ok := m.rows[id]; ok {
			c := c
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *memoryTicketCategoryRepository) Update(ctx context.Context, c *category.TicketCategory) error {
	m.rows[c.ID()] = *c
	return nil
}

func (m *memoryTicketCategoryRepository) Delete(ctx context.Context, id uint) error {
	delete(m.rows, id)
	return nil
}

func (m *memoryTicketCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*category.TicketCategory, error) {
	out := make([]*category.TicketCategory, 0, len(m.rows))
	for _, c := range m.rows {
		if activeOnly && !c.IsActive() {
			continue
		}
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (m *memoryTicketCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	for id, c := range m.rows {
		if id != excludeID && c.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryTicketCategoryRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	for id, c := range m.rows {
		if id != excludeID && c.Code() == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryTicketCategoryRepository) CountTickets(ctx context.Context, id uint) (int64, error) {
	return m.ticketCount[id], nil
}

// stubAssetRepository only answers CountByCategory.
type stubAssetRepository struct {
	asset.Repository
	counts map[uint]int64
}

func (s *stubAssetRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return s.counts[categoryID], nil
}

type mockTransactor struct{}

func (mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testChecker() policy.Checker {
	return policy.NewStaticChecker([]policy.Rule{
		{Role: authorization.RoleAdmin, Resource: policy.ResourceCategory, Action: policy.ActionWrite},
		{Role: authorization.RoleManager, Resource: policy.ResourceCategory, Action: policy.ActionWrite},
		{Role: authorization.RoleIT, Resource: policy.ResourceCategory, Action: policy.ActionWrite},
	})
}

func itStaff() policy.Principal {
	return policy.Principal{UserID: 5, Role: authorization.RoleIT}
}

func staff() policy.Principal {
	return policy.Principal{UserID: 9, Role: authorization.RoleStaff}
}

var seedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
