package ticket

import (
	"fmt"

	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

const (
	msgNotAuthorized          = "Not authorized to access this ticket"
	msgRequesterStatusDenied  = "Users can only Cancel or Re-open their tickets"
	msgRequesterFieldDenied   = "Only ticket managers can change assignee, category or resolution note"
	msgResolutionNoteRequired = "Resolution note is required before resolving a ticket"
)

func newNotAuthorizedError() error {
	return errors.NewForbiddenError(msgNotAuthorized)
}

// AssigneeConflictError reports that the ticket is already held by another user.
type AssigneeConflictError struct {
	HolderID uint
}

func (e *AssigneeConflictError) Error() string {
	return fmt.Sprintf("ticket already assigned to user %d", e.HolderID)
}

// ConflictMessage renders the user-facing message naming the current holder.
func ConflictMessage(holderName string) string {
	if holderName == "" {
		holderName = "someone"
	}
	return fmt.Sprintf("Ticket was just taken by %s. Please reload the page", holderName)
}
