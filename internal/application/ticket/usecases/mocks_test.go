package usecases

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

type mockTicketRepository struct {
	CreateFunc           func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc          func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateIfAssigneeFunc func(ctx context.Context, t *ticket.Ticket, expected *uint) error
	DeleteFunc           func(ctx context.Context, ticketID uint) error
	ListFunc             func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountStatsFunc       func(ctx context.Context, filter ticket.DateRange) (*ticket.Stats, error)
	FindInBatchesFunc    func(ctx context.Context, filter ticket.DateRange, batchSize int, fn func([]*ticket.Ticket) error) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) UpdateIfAssignee(ctx context.Context, t *ticket.Ticket, expected *uint) error {
	if m.UpdateIfAssigneeFunc != nil {
		return m.UpdateIfAssigneeFunc(ctx, t, expected)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountStats(ctx context.Context, filter ticket.DateRange) (*ticket.Stats, error) {
	if m.CountStatsFunc != nil {
		return m.CountStatsFunc(ctx, filter)
	}
	return &ticket.Stats{}, nil
}

func (m *mockTicketRepository) FindInBatches(ctx context.Context, filter ticket.DateRange, batchSize int, fn func([]*ticket.Ticket) error) error {
	if m.FindInBatchesFunc != nil {
		return m.FindInBatchesFunc(ctx, filter, batchSize, fn)
	}
	return nil
}

type mockCommentRepository struct {
	mu       sync.Mutex
	created  []*ticket.Comment
	nextID   uint
	ListFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	CreateFn func(ctx context.Context, c *ticket.Comment) error
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := c.SetID(m.nextID); err != nil {
		return err
	}
	m.created = append(m.created, c)
	return nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	users map[uint]*user.User
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*user.User)}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := m.GetByUsername(ctx, username)
	return err == nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	return m.GetByIDs(ctx, nil)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

type mockTicketCategoryRepository struct {
	categories map[uint]*category.TicketCategory
}

func newMockTicketCategoryRepository(cats ...*category.TicketCategory) *mockTicketCategoryRepository {
	m := &mockTicketCategoryRepository{categories: make(map[uint]*category.TicketCategory)}
	for _, c := range cats {
		m.categories[c.ID()] = c
	}
	return m
}

func (m *mockTicketCategoryRepository) Create(ctx context.Context, c *category.TicketCategory) error {
	return nil
}

func (m *mockTicketCategoryRepository) GetByID(ctx context.Context, id uint) (*category.TicketCategory, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, errors.NewNotFoundError("ticket category not found")
}

func (m *mockTicketCategoryRepository) GetByIDs(ctx context.Context, ids []uint) ([]*category.TicketCategory, error) {
	var out []*category.TicketCategory
	for _, id := range ids {
		if c, ok := m.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockTicketCategoryRepository) Update(ctx context.Context, c *category.TicketCategory) error {
	return nil
}

func (m *mockTicketCategoryRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockTicketCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*category.TicketCategory, error) {
	return nil, nil
}

func (m *mockTicketCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return false, nil
}

func (m *mockTicketCategoryRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	return false, nil
}

func (m *mockTicketCategoryRepository) CountTickets(ctx context.Context, id uint) (int64, error) {
	return 0, nil
}

// mockTransactor runs the unit of work inline and counts invocations.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockStatusRecorder struct {
	transitions [][2]string
}

func (m *mockStatusRecorder) RecordStatusChange(from, to string) {
	m.transitions = append(m.transitions, [2]string{from, to})
}

type mockStore struct {
	saved   map[string]int64
	deleted []string
	SaveErr error
}

func newMockStore() *mockStore {
	return &mockStore{saved: make(map[string]int64)}
}

func (m *mockStore) Save(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return err
	}
	m.saved[objectPath] = n
	return nil
}

func (m *mockStore) Delete(ctx context.Context, objectPath string) error {
	m.deleted = append(m.deleted, objectPath)
	return nil
}

type mockReportWriter struct {
	header []string
	rows   [][]any
}

func (m *mockReportWriter) Write(ctx context.Context, sheet string, header []string, fill func(emit func(row []any) error) error) (string, error) {
	m.header = header
	if err := fill(func(row []any) error {
		m.rows = append(m.rows, row)
		return nil
	}); err != nil {
		return "", err
	}
	return "/tmp/report.xlsx", nil
}

type stubRenderer struct{}

func (stubRenderer) ToHTMLSanitized(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

type stubSanitizer struct{}

func (stubSanitizer) Sanitize(content string) string {
	return "clean:" + content
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const (
	staffID   uint = 10
	managerID uint = 20
	adminID   uint = 30
	itID      uint = 40
)

var fixedTime = time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

func testChecker() policy.Checker {
	return policy.NewStaticChecker([]policy.Rule{
		{Role: authorization.RoleAdmin, Resource: policy.ResourceTicket, Action: policy.ActionManage},
		{Role: authorization.RoleManager, Resource: policy.ResourceTicket, Action: policy.ActionManage},
		{Role: authorization.RoleAdmin, Resource: policy.ResourceTicket, Action: policy.ActionDelete},
		{Role: authorization.RoleAdmin, Resource: policy.ResourceTicket, Action: policy.ActionStats},
		{Role: authorization.RoleManager, Resource: policy.ResourceTicket, Action: policy.ActionStats},
		{Role: authorization.RoleAdmin, Resource: policy.ResourceTicket, Action: policy.ActionExport},
		{Role: authorization.RoleManager, Resource: policy.ResourceTicket, Action: policy.ActionExport},
	})
}

func staff() policy.Principal {
	return policy.Principal{UserID: staffID, Role: authorization.RoleStaff}
}

func manager() policy.Principal {
	return policy.Principal{UserID: managerID, Role: authorization.RoleManager}
}

func admin() policy.Principal {
	return policy.Principal{UserID: adminID, Role: authorization.RoleAdmin}
}

func mustUser(id uint, username, fullName string, role authorization.UserRole) *user.User {
	u, err := user.ReconstructUser(id, username, fullName, "hash", role, true, fixedTime)
	if err != nil {
		panic(err)
	}
	return u
}

func testUsers() *mockUserRepository {
	return newMockUserRepository(
		mustUser(staffID, "staff", "Staff Member", authorization.RoleStaff),
		mustUser(managerID, "manager", "Minh Manager", authorization.RoleManager),
		mustUser(adminID, "admin", "Admin", authorization.RoleAdmin),
		mustUser(itID, "it", "Lan IT", authorization.RoleIT),
	)
}

func testCategories() *mockTicketCategoryRepository {
	return newMockTicketCategoryRepository(
		category.ReconstructTicketCategory(3, "Network", "NET", "", 8, true, fixedTime),
	)
}

func storedTicket(id uint, status vo.TicketStatus, assignee *uint, note string) *ticket.Ticket {
	categoryID := uint(3)
	t, err := ticket.ReconstructTicket(
		id, "VPN down", "cannot **connect**",
		&categoryID, nil,
		vo.PriorityHigh, status,
		[]string{"uploads/tickets/ticket_a.png"},
		staffID, assignee, note,
		fixedTime, fixedTime, nil,
	)
	if err != nil {
		panic(err)
	}
	return t
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}
