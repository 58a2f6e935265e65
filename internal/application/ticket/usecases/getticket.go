package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID  uint
	Principal policy.Principal
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	checker     policy.Checker
	renderer    MarkdownRenderer
	lookup      lookupLoader
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	categoryRepo category.TicketCategoryRepository,
	checker policy.Checker,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		checker:     checker,
		renderer:    renderer,
		lookup:      lookupLoader{userRepo: userRepo, categoryRepo: categoryRepo},
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, q GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing get ticket use case", "ticket_id", q.TicketID, "user_id", q.Principal.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, q.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeAccessedBy(q.Principal.UserID, policy.CanManageTickets(uc.checker, q.Principal)) {
		uc.logger.Warnw("user not authorized to view ticket", "ticket_id", q.TicketID, "user_id", q.Principal.UserID)
		return nil, errors.NewForbiddenError("Not authorized to view this ticket")
	}

	comments, err := uc.commentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to load ticket")
	}

	lookup, err := uc.lookup.load(ctx, []*ticket.Ticket{t}, comments)
	if err != nil {
		uc.logger.Errorw("failed to load ticket participants", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to load ticket")
	}

	result := dto.ToTicketDTO(t, lookup)
	result.Comments = make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		result.Comments = append(result.Comments, dto.ToCommentDTO(c, lookup))
	}

	if t.Description() != "" {
		html, err := uc.renderer.ToHTMLSanitized(t.Description())
		if err != nil {
			uc.logger.Warnw("failed to render ticket description", "ticket_id", t.ID(), "error", err)
		} else {
			result.DescriptionHTML = html
		}
	}

	return result, nil
}
