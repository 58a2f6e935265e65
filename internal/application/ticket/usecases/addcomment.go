package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID  uint
	Principal policy.Principal
	Content   string
	Type      string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	checker     policy.Checker
	sanitizer   ContentSanitizer
	txMgr       db.Transactor
	recorder    StatusRecorder
	lookup      lookupLoader
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	categoryRepo category.TicketCategoryRepository,
	checker policy.Checker,
	sanitizer ContentSanitizer,
	txMgr db.Transactor,
	recorder StatusRecorder,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		checker:     checker,
		sanitizer:   sanitizer,
		txMgr:       txMgr,
		recorder:    recorder,
		lookup:      lookupLoader{userRepo: userRepo, categoryRepo: categoryRepo},
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.Principal.UserID)

	commentType, err := vo.NewCommentType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	isManager := policy.CanManageTickets(uc.checker, cmd.Principal)

	// internal and system entries are reserved for ticket managers
	if commentType.IsRestricted() && !isManager {
		commentType = vo.CommentTypeComment
	}

	content := cmd.Content
	if uc.sanitizer != nil {
		content = uc.sanitizer.Sanitize(content)
	}

	var created *ticket.Comment
	var reopened bool
	var fromStatus vo.TicketStatus
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if !t.CanBeAccessedBy(cmd.Principal.UserID, isManager) {
			return errors.NewForbiddenError("Not authorized to access this ticket")
		}

		now := biztime.NowUTC()
		comment, err := ticket.NewComment(t.ID(), cmd.Principal.UserID, content, commentType, now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.commentRepo.Create(txCtx, comment); err != nil {
			return err
		}
		created = comment

		fromStatus = t.Status()
		// only a non-manager can reach here as the requester; managers never reopen
		if !isManager && t.ReopenByComment(now) {
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return err
			}
			notice, err := ticket.NewSystemComment(t.ID(), nil, ticket.ReopenedByCommentMessage, now)
			if err != nil {
				return err
			}
			if err := uc.commentRepo.Create(txCtx, notice); err != nil {
				return err
			}
			reopened = true
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to add comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("Failed to add comment")
	}

	if reopened {
		uc.logger.Infow("ticket reopened by requester comment", "ticket_id", cmd.TicketID)
		if uc.recorder != nil {
			uc.recorder.RecordStatusChange(fromStatus.String(), vo.StatusInProgress.String())
		}
	}

	lookup, err := uc.lookup.load(ctx, nil, []*ticket.Comment{created})
	if err != nil {
		uc.logger.Warnw("failed to load comment author", "ticket_id", cmd.TicketID, "error", err)
		lookup = nil
	}

	result := dto.ToCommentDTO(created, lookup)
	return &result, nil
}
