package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const (
	DefaultExportBatchSize = 1000
	DefaultExportUTCOffset = 7

	exportSheetName   = "Tickets"
	exportTimeLayout  = "02/01/2006 15:04"
	exportFilenameAll = "All"
)

// ExportSettings controls report paging and the wall-clock offset applied to timestamps.
// Zero values fall back to the defaults.
type ExportSettings struct {
	UTCOffsetHours int
	BatchSize      int
}

func (s ExportSettings) withDefaults() ExportSettings {
	if s.BatchSize <= 0 {
		s.BatchSize = DefaultExportBatchSize
	}
	if s.UTCOffsetHours == 0 {
		s.UTCOffsetHours = DefaultExportUTCOffset
	}
	return s
}

var exportHeader = []string{
	"Ticket ID",
	"Title",
	"Requester",
	"Assignee",
	"Category",
	"Status",
	"Priority",
	"Created At (VN)",
	"Resolved At (VN)",
	"Resolution Note",
}

type ExportTicketsQuery struct {
	Principal policy.Principal
	StartDate *time.Time
	EndDate   *time.Time
}

// ExportTicketsResult points at a temporary spreadsheet the caller must remove once
// it has been sent.
type ExportTicketsResult struct {
	FilePath string
	Filename string
}

type ExportTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	checker    policy.Checker
	writer     ReportWriter
	recorder   ExportRecorder
	settings   ExportSettings
	lookup     lookupLoader
	logger     logger.Interface
}

func NewExportTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	categoryRepo category.TicketCategoryRepository,
	checker policy.Checker,
	writer ReportWriter,
	recorder ExportRecorder,
	settings ExportSettings,
	logger logger.Interface,
) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo: ticketRepo,
		checker:    checker,
		writer:     writer,
		recorder:   recorder,
		settings:   settings.withDefaults(),
		lookup:     lookupLoader{userRepo: userRepo, categoryRepo: categoryRepo},
		logger:     logger,
	}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context, q ExportTicketsQuery) (*ExportTicketsResult, error) {
	uc.logger.Infow("executing export tickets use case", "user_id", q.Principal.UserID)

	if !uc.checker.Can(q.Principal, policy.ActionExport, policy.ResourceTicket) {
		return nil, errors.NewForbiddenError("Permission denied")
	}
	if err := validateDateRange(q.StartDate, q.EndDate); err != nil {
		return nil, err
	}

	from, to := biztime.DayRangeUTC(q.StartDate, q.EndDate)
	rows := 0
	path, err := uc.writer.Write(ctx, exportSheetName, exportHeader, func(emit func(row []any) error) error {
		return uc.ticketRepo.FindInBatches(ctx, ticket.DateRange{From: from, To: to}, uc.settings.BatchSize, func(batch []*ticket.Ticket) error {
			lookup, err := uc.lookup.load(ctx, batch, nil)
			if err != nil {
				return err
			}
			for _, t := range batch {
				if err := emit(exportRow(t, lookup, uc.settings.UTCOffsetHours)); err != nil {
					return err
				}
				rows++
			}
			return nil
		})
	})
	if err != nil {
		uc.logger.Errorw("failed to export tickets", "error", err)
		return nil, errors.NewInternalError("Failed to export tickets")
	}

	if uc.recorder != nil {
		uc.recorder.RecordExportRows(rows)
	}

	filename := ExportFilename(q.StartDate, q.EndDate)
	uc.logger.Infow("tickets exported successfully", "rows", rows, "filename", filename)
	return &ExportTicketsResult{FilePath: path, Filename: filename}, nil
}

func exportRow(t *ticket.Ticket, lookup *dto.Lookup, utcOffset int) []any {
	requesterID := t.RequesterID()
	requester := lookup.UserName(&requesterID)
	if requester == "" {
		requester = "Unknown"
	}
	assignee := lookup.UserName(t.AssigneeID())
	if assignee == "" {
		assignee = "Unassigned"
	}
	categoryName := lookup.CategoryName(t.CategoryID())
	if categoryName == "" {
		categoryName = "General"
	}
	resolvedAt := ""
	if t.ResolvedAt() != nil {
		resolvedAt = biztime.FormatWithOffset(*t.ResolvedAt(), utcOffset, exportTimeLayout)
	}

	return []any{
		t.ID(),
		t.Title(),
		requester,
		assignee,
		categoryName,
		t.Status().String(),
		t.Priority().Label(),
		biztime.FormatWithOffset(t.CreatedAt(), utcOffset, exportTimeLayout),
		resolvedAt,
		t.ResolutionNote(),
	}
}

// ExportFilename names the report after its date bounds, using "All" for an open side.
func ExportFilename(start, end *time.Time) string {
	format := func(d *time.Time) string {
		if d == nil {
			return exportFilenameAll
		}
		return d.Format(biztime.DateLayout)
	}
	return fmt.Sprintf("Report_%s_to_%s.xlsx", format(start), format(end))
}
