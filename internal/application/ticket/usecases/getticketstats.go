package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// GetTicketStatsQuery bounds created_at by business-timezone calendar dates; both ends
// are inclusive and either may be nil.
type GetTicketStatsQuery struct {
	Principal policy.Principal
	StartDate *time.Time
	EndDate   *time.Time
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	checker    policy.Checker
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.TicketRepository,
	checker policy.Checker,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		checker:    checker,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, q GetTicketStatsQuery) (*dto.TicketStatsDTO, error) {
	uc.logger.Infow("executing get ticket stats use case", "user_id", q.Principal.UserID)

	if !uc.checker.Can(q.Principal, policy.ActionStats, policy.ResourceTicket) {
		return nil, errors.NewForbiddenError("Permission denied")
	}
	if err := validateDateRange(q.StartDate, q.EndDate); err != nil {
		return nil, err
	}

	from, to := biztime.DayRangeUTC(q.StartDate, q.EndDate)
	stats, err := uc.ticketRepo.CountStats(ctx, ticket.DateRange{From: from, To: to})
	if err != nil {
		uc.logger.Errorw("failed to count ticket stats", "error", err)
		return nil, errors.NewInternalError("Failed to load ticket statistics")
	}

	return dto.ToTicketStatsDTO(stats), nil
}

func validateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return errors.NewValidationError("end_date must not be before start_date")
	}
	return nil
}
