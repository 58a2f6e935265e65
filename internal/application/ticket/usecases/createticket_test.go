package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	t.Run("defaults priority and parses attachments", func(t *testing.T) {
		var saved *ticket.Ticket
		repo := &mockTicketRepository{
			CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return tk.SetID(42)
			},
		}
		uc := NewCreateTicketUseCase(repo, logger.NewNopLogger())

		result, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:         "Printer jam",
			Description:   "3rd floor",
			CategoryID:    uintPtr(3),
			AttachmentURL: "uploads/tickets/a.png, uploads/tickets/b.pdf",
			RequesterID:   staffID,
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, uint(42), result.ID)
		assert.Equal(t, "Open", result.Status)
		assert.Equal(t, 2, result.Priority)
		assert.Equal(t, "Medium", result.PriorityLabel)
		assert.Equal(t, []string{"uploads/tickets/a.png", "uploads/tickets/b.pdf"}, result.Attachments)
		assert.Nil(t, result.AssigneeID)
		assert.Equal(t, staffID, result.RequesterID)
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateTicketCommand{Title: "x", Priority: 9, RequesterID: staffID})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects empty title", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateTicketCommand{Title: "  ", RequesterID: staffID})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		repo := &mockTicketRepository{
			CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return fmt.Errorf("disk full")
			},
		}
		uc := NewCreateTicketUseCase(repo, logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), CreateTicketCommand{Title: "x", RequesterID: staffID})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	})
}
