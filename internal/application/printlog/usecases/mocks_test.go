package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/printlog"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type mockPrintLogRepository struct {
	cards   []*printlog.CardPrint
	tools   []*printlog.ToolPrint
	offsets []time.Duration
	nextID  uint

	CreateCardPrintsFunc  func(ctx context.Context, prints []*printlog.CardPrint) error
	CardCountsByMonthFunc func(ctx context.Context, offset time.Duration) ([]printlog.CardMonth, error)
	ToolTotalsByMonthFunc func(ctx context.Context, offset time.Duration) ([]printlog.ToolMonth, error)
}

func (m *mockPrintLogRepository) CreateCardPrints(ctx context.Context, prints []*printlog.CardPrint) error {
	if m.CreateCardPrintsFunc != nil {
		return m.CreateCardPrintsFunc(ctx, prints)
	}
	for _, p := range prints {
		m.nextID++
		if err := p.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.cards = append(m.cards, prints...)
	return nil
}

func (m *mockPrintLogRepository) CreateToolPrint(ctx context.Context, p *printlog.ToolPrint) error {
	m.nextID++
	if err := p.SetID(m.nextID); err != nil {
		return err
	}
	m.tools = append(m.tools, p)
	return nil
}

func (m *mockPrintLogRepository) CardCountsByMonth(ctx context.Context, offset time.Duration) ([]printlog.CardMonth, error) {
	m.offsets = append(m.offsets, offset)
	if m.CardCountsByMonthFunc != nil {
		return m.CardCountsByMonthFunc(ctx, offset)
	}
	return nil, nil
}

func (m *mockPrintLogRepository) ToolTotalsByMonth(ctx context.Context, offset time.Duration) ([]printlog.ToolMonth, error) {
	m.offsets = append(m.offsets, offset)
	if m.ToolTotalsByMonthFunc != nil {
		return m.ToolTotalsByMonthFunc(ctx, offset)
	}
	return nil, nil
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func testChecker() policy.Checker {
	return policy.NewStaticChecker([]policy.Rule{
		{Role: authorization.RoleHR, Resource: policy.ResourcePrint, Action: policy.ActionWrite},
		{Role: authorization.RoleHR, Resource: policy.ResourcePrint, Action: policy.ActionStats},
		{Role: authorization.RoleManager, Resource: policy.ResourcePrint, Action: policy.ActionStats},
	})
}

func newTestUseCases(repo *mockPrintLogRepository, tx *mockTransactor) *PrintLogUseCases {
	return NewPrintLogUseCases(repo, testChecker(), tx, logger.NewNopLogger())
}

var (
	hr      = policy.Principal{UserID: 3, Role: authorization.RoleHR}
	manager = policy.Principal{UserID: 20, Role: authorization.RoleManager}
	staff   = policy.Principal{UserID: 9, Role: authorization.RoleStaff}
)
