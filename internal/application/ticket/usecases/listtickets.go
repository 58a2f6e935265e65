package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/query"
)

const openTicketsLimit = 10

type ListTicketsResult struct {
	Items    []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListMyTicketsQuery struct {
	UserID uint
	Page   query.PageFilter
}

type ListMyTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	lookup     lookupLoader
	logger     logger.Interface
}

func NewListMyTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	categoryRepo category.TicketCategoryRepository,
	logger logger.Interface,
) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{
		ticketRepo: ticketRepo,
		lookup:     lookupLoader{userRepo: userRepo, categoryRepo: categoryRepo},
		logger:     logger,
	}
}

func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, q ListMyTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing list my tickets use case", "user_id", q.UserID, "page", q.Page.Page, "size", q.Page.PageSize)

	userID := q.UserID
	return listTickets(ctx, uc.ticketRepo, uc.lookup, uc.logger, ticket.TicketFilter{
		PageFilter:  q.Page,
		RequesterID: &userID,
	})
}

type ManageTicketsQuery struct {
	Principal policy.Principal
	// Status and Priority are exact-match filters; empty or "All" disables them.
	Status   string
	Priority string
	Page     query.PageFilter
}

type ManageTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	checker    policy.Checker
	lookup     lookupLoader
	logger     logger.Interface
}

func NewManageTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	categoryRepo category.TicketCategoryRepository,
	checker policy.Checker,
	logger logger.Interface,
) *ManageTicketsUseCase {
	return &ManageTicketsUseCase{
		ticketRepo: ticketRepo,
		checker:    checker,
		lookup:     lookupLoader{userRepo: userRepo, categoryRepo: categoryRepo},
		logger:     logger,
	}
}

func (uc *ManageTicketsUseCase) Execute(ctx context.Context, q ManageTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing manage tickets use case",
		"user_id", q.Principal.UserID,
		"status", q.Status,
		"priority", q.Priority,
		"page", q.Page.Page,
	)

	if !policy.CanManageTickets(uc.checker, q.Principal) {
		uc.logger.Warnw("manage tickets denied", "user_id", q.Principal.UserID, "role", q.Principal.Role)
		return nil, errors.NewForbiddenError("Permission denied")
	}

	filter := ticket.TicketFilter{PageFilter: q.Page}

	if q.Status != "" && q.Status != constants.FilterAll {
		status, err := vo.NewTicketStatus(q.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if q.Priority != "" && q.Priority != constants.FilterAll {
		priority, err := vo.ParsePriority(q.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	return listTickets(ctx, uc.ticketRepo, uc.lookup, uc.logger, filter)
}

func listTickets(
	ctx context.Context,
	repo ticket.TicketRepository,
	lookup lookupLoader,
	log logger.Interface,
	filter ticket.TicketFilter,
) (*ListTicketsResult, error) {
	tickets, total, err := repo.List(ctx, filter)
	if err != nil {
		log.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("Failed to list tickets")
	}

	l, err := lookup.load(ctx, tickets, nil)
	if err != nil {
		log.Errorw("failed to load ticket participants", "error", err)
		return nil, errors.NewInternalError("Failed to list tickets")
	}

	return &ListTicketsResult{
		Items:    dto.ToTicketDTOs(tickets, l),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

type ListOpenTicketsQuery struct {
	Principal policy.Principal
}

// ListOpenTicketsUseCase returns the newest Open tickets for the manager dashboard.
// Callers without management rights get an empty list.
type ListOpenTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	checker    policy.Checker
	lookup     lookupLoader
	logger     logger.Interface
}

func NewListOpenTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	categoryRepo category.TicketCategoryRepository,
	checker policy.Checker,
	logger logger.Interface,
) *ListOpenTicketsUseCase {
	return &ListOpenTicketsUseCase{
		ticketRepo: ticketRepo,
		checker:    checker,
		lookup:     lookupLoader{userRepo: userRepo, categoryRepo: categoryRepo},
		logger:     logger,
	}
}

func (uc *ListOpenTicketsUseCase) Execute(ctx context.Context, q ListOpenTicketsQuery) ([]*dto.TicketDTO, error) {
	uc.logger.Infow("executing list open tickets use case", "user_id", q.Principal.UserID)

	if !policy.CanManageTickets(uc.checker, q.Principal) {
		return []*dto.TicketDTO{}, nil
	}

	status := vo.StatusOpen
	result, err := listTickets(ctx, uc.ticketRepo, uc.lookup, uc.logger, ticket.TicketFilter{
		PageFilter: query.NewPageFilter(1, openTicketsLimit),
		Status:     &status,
	})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}
