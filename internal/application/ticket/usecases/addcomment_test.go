package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type commentFixture struct {
	ticket   *ticket.Ticket
	updates  int
	comments *mockCommentRepository
	recorder *mockStatusRecorder
	uc       *AddCommentUseCase
}

func newCommentFixture(tk *ticket.Ticket) *commentFixture {
	f := &commentFixture{
		ticket:   tk,
		comments: &mockCommentRepository{},
		recorder: &mockStatusRecorder{},
	}
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			f.updates++
			return nil
		},
	}
	f.uc = NewAddCommentUseCase(repo, f.comments, testUsers(), testCategories(), testChecker(),
		stubSanitizer{}, &mockTransactor{}, f.recorder, logger.NewNopLogger())
	return f
}

func TestAddCommentUseCase_SanitizesContent(t *testing.T) {
	f := newCommentFixture(storedTicket(1, vo.StatusOpen, nil, ""))

	result, err := f.uc.Execute(context.Background(), AddCommentCommand{
		TicketID:  1,
		Principal: staff(),
		Content:   "still broken",
	})

	require.NoError(t, err)
	assert.Equal(t, "clean:still broken", result.Content)
	assert.Equal(t, "Comment", result.Type)
	assert.Equal(t, "staff", result.User.Username)
	assert.Equal(t, 0, f.updates)
}

func TestAddCommentUseCase_RestrictedTypeCoercedForStaff(t *testing.T) {
	f := newCommentFixture(storedTicket(1, vo.StatusOpen, nil, ""))

	result, err := f.uc.Execute(context.Background(), AddCommentCommand{
		TicketID:  1,
		Principal: staff(),
		Content:   "hidden?",
		Type:      "Internal",
	})

	require.NoError(t, err)
	assert.Equal(t, "Comment", result.Type)
}

func TestAddCommentUseCase_ManagerInternalNote(t *testing.T) {
	f := newCommentFixture(storedTicket(1, vo.StatusOpen, nil, ""))

	result, err := f.uc.Execute(context.Background(), AddCommentCommand{
		TicketID:  1,
		Principal: manager(),
		Content:   "check switch port",
		Type:      "Internal",
	})

	require.NoError(t, err)
	assert.Equal(t, "Internal", result.Type)
}

func TestAddCommentUseCase_RequesterReopensFinishedTicket(t *testing.T) {
	for _, status := range []vo.TicketStatus{vo.StatusResolved, vo.StatusCancelled} {
		t.Run(status.String(), func(t *testing.T) {
			f := newCommentFixture(storedTicket(1, status, uintPtr(managerID), "done"))

			_, err := f.uc.Execute(context.Background(), AddCommentCommand{
				TicketID:  1,
				Principal: staff(),
				Content:   "it broke again",
			})

			require.NoError(t, err)
			assert.Equal(t, vo.StatusInProgress, f.ticket.Status())
			assert.Equal(t, 1, f.updates)
			require.Len(t, f.comments.created, 2)
			notice := f.comments.created[1]
			assert.Equal(t, vo.CommentTypeSystem, notice.Type())
			assert.Equal(t, ticket.ReopenedByCommentMessage, notice.Content())
			assert.Nil(t, notice.UserID())
			assert.Equal(t, [][2]string{{status.String(), "In Progress"}}, f.recorder.transitions)
		})
	}
}

func TestAddCommentUseCase_ManagerCommentDoesNotReopen(t *testing.T) {
	f := newCommentFixture(storedTicket(1, vo.StatusResolved, uintPtr(managerID), "done"))

	_, err := f.uc.Execute(context.Background(), AddCommentCommand{
		TicketID:  1,
		Principal: manager(),
		Content:   "follow-up",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, f.ticket.Status())
	assert.Len(t, f.comments.created, 1)
}

func TestAddCommentUseCase_ManagerOwnTicketStaysFinished(t *testing.T) {
	for _, status := range []vo.TicketStatus{vo.StatusResolved, vo.StatusCancelled} {
		t.Run(status.String(), func(t *testing.T) {
			categoryID := uint(3)
			own, err := ticket.ReconstructTicket(
				1, "Laptop fan", "noisy",
				&categoryID, nil,
				vo.PriorityMedium, status,
				nil,
				managerID, uintPtr(itID), "replaced fan",
				fixedTime, fixedTime, nil,
			)
			require.NoError(t, err)
			f := newCommentFixture(own)

			_, err = f.uc.Execute(context.Background(), AddCommentCommand{
				TicketID:  1,
				Principal: manager(),
				Content:   "thanks, all good",
			})

			require.NoError(t, err)
			assert.Equal(t, status, f.ticket.Status())
			assert.Equal(t, 0, f.updates)
			assert.Len(t, f.comments.created, 1)
			assert.Empty(t, f.recorder.transitions)
		})
	}
}

func TestAddCommentUseCase_StrangerForbidden(t *testing.T) {
	f := newCommentFixture(storedTicket(1, vo.StatusOpen, nil, ""))

	_, err := f.uc.Execute(context.Background(), AddCommentCommand{
		TicketID:  1,
		Principal: policy.Principal{UserID: itID, Role: authorization.RoleIT},
		Content:   "hi",
	})

	assert.True(t, errors.IsForbiddenError(err))
	assert.Empty(t, f.comments.created)
}

func TestAddCommentUseCase_EmptyContent(t *testing.T) {
	f := newCommentFixture(storedTicket(1, vo.StatusOpen, nil, ""))
	f.uc.sanitizer = nil

	_, err := f.uc.Execute(context.Background(), AddCommentCommand{TicketID: 1, Principal: staff(), Content: "   "})

	assert.True(t, errors.IsValidationError(err))
}
