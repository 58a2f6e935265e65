package ticket

import (
	"context"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/query"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// Update persists every mutable column of the ticket unconditionally.
	Update(ctx context.Context, ticket *Ticket) error
	// UpdateIfAssignee persists the ticket only while the stored assignee still equals
	// expected (nil meaning unassigned). It returns an *AssigneeConflictError carrying
	// the current holder when the row changed underneath.
	UpdateIfAssignee(ctx context.Context, ticket *Ticket, expected *uint) error
	Delete(ctx context.Context, ticketID uint) error
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountStats(ctx context.Context, filter DateRange) (*Stats, error)
	// FindInBatches streams tickets matching filter, newest first, batchSize at a time.
	FindInBatches(ctx context.Context, filter DateRange, batchSize int, fn func(batch []*Ticket) error) error
}

// TicketFilter selects tickets for paginated listings.
type TicketFilter struct {
	query.PageFilter
	RequesterID *uint
	Status      *vo.TicketStatus
	Priority    *vo.Priority
}

// DateRange bounds created_at as a half-open UTC interval [From, To). Zero values
// leave the side open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Stats are dashboard ticket counts.
type Stats struct {
	Total      int64
	Open       int64
	InProgress int64
	Resolved   int64
	Critical   int64
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
