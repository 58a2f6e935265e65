package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	t.Run("admin deletes ticket and attachments", func(t *testing.T) {
		var deletedID uint
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(id, vo.StatusOpen, nil, ""), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}
		store := newMockStore()
		uc := NewDeleteTicketUseCase(repo, store, testChecker(), logger.NewNopLogger())

		err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 4, Principal: admin()})

		require.NoError(t, err)
		assert.Equal(t, uint(4), deletedID)
		assert.Equal(t, []string{"uploads/tickets/ticket_a.png"}, store.deleted)
	})

	t.Run("manager without delete grant is forbidden", func(t *testing.T) {
		repo := &mockTicketRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				t.Fatal("delete must not be called")
				return nil
			},
		}
		uc := NewDeleteTicketUseCase(repo, newMockStore(), testChecker(), logger.NewNopLogger())

		err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 4, Principal: manager()})

		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("ticket removed concurrently keeps not found", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(id, vo.StatusOpen, nil, ""), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				return errors.NewNotFoundError("Ticket not found")
			},
		}
		store := newMockStore()
		uc := NewDeleteTicketUseCase(repo, store, testChecker(), logger.NewNopLogger())

		err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 4, Principal: admin()})

		assert.True(t, errors.IsNotFoundError(err))
		assert.Empty(t, store.deleted)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(id, vo.StatusOpen, nil, ""), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				return fmt.Errorf("connection reset")
			},
		}
		uc := NewDeleteTicketUseCase(repo, newMockStore(), testChecker(), logger.NewNopLogger())

		err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 4, Principal: admin()})

		assert.Equal(t, errors.ErrorTypeInternal, errors.GetAppError(err).Type)
	})

	t.Run("missing ticket", func(t *testing.T) {
		uc := NewDeleteTicketUseCase(&mockTicketRepository{}, newMockStore(), testChecker(), logger.NewNopLogger())
		err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 4, Principal: admin()})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
