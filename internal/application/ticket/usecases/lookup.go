package usecases

import (
	"context"
	"fmt"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
)

// lookupLoader batch-loads the users and categories a page of tickets refers to.
type lookupLoader struct {
	userRepo     user.Repository
	categoryRepo category.TicketCategoryRepository
}

func (l lookupLoader) load(ctx context.Context, tickets []*ticket.Ticket, comments []*ticket.Comment) (*dto.Lookup, error) {
	lookup := dto.NewLookup()

	userIDs := make(map[uint]struct{})
	categoryIDs := make(map[uint]struct{})
	for _, t := range tickets {
		userIDs[t.RequesterID()] = struct{}{}
		if t.AssigneeID() != nil {
			userIDs[*t.AssigneeID()] = struct{}{}
		}
		if t.CategoryID() != nil {
			categoryIDs[*t.CategoryID()] = struct{}{}
		}
	}
	for _, c := range comments {
		if c.UserID() != nil {
			userIDs[*c.UserID()] = struct{}{}
		}
	}

	if len(userIDs) > 0 {
		users, err := l.userRepo.GetByIDs(ctx, keys(userIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to load users: %w", err)
		}
		for _, u := range users {
			lookup.Users[u.ID()] = u
		}
	}

	if len(categoryIDs) > 0 {
		categories, err := l.categoryRepo.GetByIDs(ctx, keys(categoryIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to load ticket categories: %w", err)
		}
		for _, c := range categories {
			lookup.Categories[c.ID()] = c
		}
	}

	return lookup, nil
}

func keys(set map[uint]struct{}) []uint {
	out := make([]uint, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
