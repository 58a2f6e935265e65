package usecases

import (
	"context"
	stderrors "errors"

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

type UpdateTicketCommand struct {
	TicketID       uint
	Principal      policy.Principal
	Title          *string
	Description    *string
	Status         *string
	Priority       *int
	CategoryID     *uint
	ResolutionNote *string
	// AssigneeID uses the wire encoding: nil leaves it, 0 clears, -1 assigns the caller.
	AssigneeID *int64
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	checker     policy.Checker
	txMgr       db.Transactor
	recorder    StatusRecorder
	lookup      lookupLoader
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	categoryRepo category.TicketCategoryRepository,
	checker policy.Checker,
	txMgr db.Transactor,
	recorder StatusRecorder,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		checker:     checker,
		txMgr:       txMgr,
		recorder:    recorder,
		lookup:      lookupLoader{userRepo: userRepo, categoryRepo: categoryRepo},
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Principal.UserID)

	upd, err := uc.buildUpdate(cmd)
	if err != nil {
		return nil, err
	}

	isManager := policy.CanManageTickets(uc.checker, cmd.Principal)

	var updated *ticket.Ticket
	var fromStatus vo.TicketStatus
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		fromStatus = t.Status()

		result, err := t.ApplyUpdate(cmd.Principal.UserID, isManager, upd, biztime.NowUTC())
		if err != nil {
			return err
		}

		if err := uc.ticketRepo.UpdateIfAssignee(txCtx, t, result.PreviousAssigneeID); err != nil {
			return err
		}

		if result.ResolutionComment != nil {
			if err := uc.commentRepo.Create(txCtx, result.ResolutionComment); err != nil {
				return err
			}
		}

		if result.AutoAssigned {
			uc.logger.Infow("ticket auto-assigned on start", "ticket_id", t.ID(), "assignee_id", cmd.Principal.UserID)
		}

		updated = t
		return nil
	})
	if err != nil {
		return nil, uc.translateError(ctx, cmd.TicketID, err)
	}

	if uc.recorder != nil && fromStatus != updated.Status() {
		uc.recorder.RecordStatusChange(fromStatus.String(), updated.Status().String())
	}

	lookup, err := uc.lookup.load(ctx, []*ticket.Ticket{updated}, nil)
	if err != nil {
		uc.logger.Warnw("failed to load ticket participants", "ticket_id", updated.ID(), "error", err)
		lookup = nil
	}

	uc.logger.Infow("ticket updated successfully",
		"ticket_id", updated.ID(),
		"status", updated.Status(),
		"user_id", cmd.Principal.UserID,
	)
	return dto.ToTicketDTO(updated, lookup), nil
}

func (uc *UpdateTicketUseCase) buildUpdate(cmd UpdateTicketCommand) (ticket.Update, error) {
	upd := ticket.Update{
		Title:          cmd.Title,
		Description:    cmd.Description,
		CategoryID:     cmd.CategoryID,
		ResolutionNote: cmd.ResolutionNote,
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return upd, errors.NewValidationError(err.Error())
		}
		upd.Status = &status
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return upd, errors.NewValidationError(err.Error())
		}
		upd.Priority = &priority
	}

	assignee, err := ticket.AssigneeChangeFromWire(cmd.AssigneeID)
	if err != nil {
		return upd, errors.NewValidationError(err.Error())
	}
	upd.Assignee = assignee

	return upd, nil
}

// translateError maps domain failures to application errors. An assignee conflict is
// reported with the current holder's display name.
func (uc *UpdateTicketUseCase) translateError(ctx context.Context, ticketID uint, err error) error {
	var conflict *ticket.AssigneeConflictError
	if stderrors.As(err, &conflict) {
		name := ""
		if holder, lookupErr := uc.userRepo.GetByID(ctx, conflict.HolderID); lookupErr == nil {
			name = holder.DisplayName()
		}
		uc.logger.Warnw("ticket assignee conflict", "ticket_id", ticketID, "holder_id", conflict.HolderID)
		return errors.NewConflictError(ticket.ConflictMessage(name))
	}

	if errors.IsAppError(err) {
		return err
	}

	uc.logger.Errorw("failed to update ticket", "ticket_id", ticketID, "error", err)
	return errors.NewInternalError("Failed to update ticket")
}
