package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	CategoryID  *uint
	AssetID     *uint
	Priority    int
	// AttachmentURL is the comma-joined list of paths returned by the upload endpoint.
	AttachmentURL string
	RequesterID   uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "requester_id", cmd.RequesterID)

	priority := vo.DefaultPriority
	if cmd.Priority != 0 {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		priority = p
	}

	t, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		cmd.CategoryID,
		cmd.AssetID,
		priority,
		ticket.ParseAttachmentList(cmd.AttachmentURL),
		cmd.RequesterID,
		biztime.NowUTC(),
	)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "requester_id", cmd.RequesterID, "error", err)
		return nil, errors.NewInternalError("Could not save ticket to database")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "requester_id", cmd.RequesterID)
	return dto.ToTicketDTO(t, nil), nil
}
