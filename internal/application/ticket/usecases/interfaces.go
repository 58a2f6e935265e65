package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListMyTicketsExecutor interface {
	Execute(ctx context.Context, query ListMyTicketsQuery) (*ListTicketsResult, error)
}

type ManageTicketsExecutor interface {
	Execute(ctx context.Context, query ManageTicketsQuery) (*ListTicketsResult, error)
}

type ListOpenTicketsExecutor interface {
	Execute(ctx context.Context, query ListOpenTicketsQuery) ([]*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.TicketStatsDTO, error)
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error)
}

type UploadAttachmentsExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*UploadAttachmentsResult, error)
}

// MarkdownRenderer turns a ticket description into safe HTML.
type MarkdownRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// ContentSanitizer cleans user-supplied comment text.
type ContentSanitizer interface {
	Sanitize(content string) string
}

// StatusRecorder observes ticket status transitions.
type StatusRecorder interface {
	RecordStatusChange(from, to string)
}

// ExportRecorder counts rows written to reports.
type ExportRecorder interface {
	RecordExportRows(n int)
}

// ReportWriter writes a single-sheet spreadsheet to a temporary file and returns its
// path. fill is called once and must emit rows in order; on error the file is removed.
type ReportWriter interface {
	Write(ctx context.Context, sheet string, header []string, fill func(emit func(row []any) error) error) (string, error)
}
