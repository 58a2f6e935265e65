package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/attachment"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID  uint
	Principal policy.Principal
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	store      attachment.Store
	checker    policy.Checker
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	store attachment.Store,
	checker policy.Checker,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		store:      store,
		checker:    checker,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Principal.UserID)

	if !uc.checker.Can(cmd.Principal, policy.ActionDelete, policy.ResourceTicket) {
		uc.logger.Warnw("delete ticket denied", "ticket_id", cmd.TicketID, "role", cmd.Principal.Role)
		return errors.NewForbiddenError("Permission denied")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	// comments go with the ticket via the foreign key cascade
	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete ticket", "ticket_id", t.ID(), "error", err)
		return errors.NewInternalError("Failed to delete ticket")
	}

	if uc.store != nil {
		for _, path := range t.Attachments() {
			if err := uc.store.Delete(ctx, path); err != nil {
				uc.logger.Warnw("failed to remove ticket attachment", "ticket_id", t.ID(), "path", path, "error", err)
			}
		}
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", t.ID())
	return nil
}
