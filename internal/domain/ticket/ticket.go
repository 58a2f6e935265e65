package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 10000
)

type Ticket struct {
	id             uint
	title          string
	description    string
	categoryID     *uint
	assetID        *uint
	priority       vo.Priority
	status         vo.TicketStatus
	attachments    []string
	requesterID    uint
	assigneeID     *uint
	resolutionNote string
	createdAt      time.Time
	updatedAt      time.Time
	resolvedAt     *time.Time
}

func NewTicket(
	title string,
	description string,
	categoryID *uint,
	assetID *uint,
	priority vo.Priority,
	attachments []string,
	requesterID uint,
	now time.Time,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if priority == 0 {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if attachments == nil {
		attachments = []string{}
	}

	return &Ticket{
		title:       title,
		description: description,
		categoryID:  categoryID,
		assetID:     assetID,
		priority:    priority,
		status:      vo.StatusOpen,
		attachments: attachments,
		requesterID: requesterID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	categoryID *uint,
	assetID *uint,
	priority vo.Priority,
	status vo.TicketStatus,
	attachments []string,
	requesterID uint,
	assigneeID *uint,
	resolutionNote string,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if attachments == nil {
		attachments = []string{}
	}

	return &Ticket{
		id:             id,
		title:          title,
		description:    description,
		categoryID:     categoryID,
		assetID:        assetID,
		priority:       priority,
		status:         status,
		attachments:    attachments,
		requesterID:    requesterID,
		assigneeID:     assigneeID,
		resolutionNote: resolutionNote,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		resolvedAt:     resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) CategoryID() *uint {
	return t.categoryID
}

func (t *Ticket) AssetID() *uint {
	return t.assetID
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Attachments() []string {
	out := make([]string, len(t.attachments))
	copy(out, t.attachments)
	return out
}

func (t *Ticket) RequesterID() uint {
	return t.requesterID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) ResolutionNote() string {
	return t.resolutionNote
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsRequester reports whether userID opened the ticket.
func (t *Ticket) IsRequester(userID uint) bool {
	return t.requesterID == userID
}

// CanBeAccessedBy reports whether the user may read or comment on the ticket.
func (t *Ticket) CanBeAccessedBy(userID uint, isManager bool) bool {
	return isManager || t.IsRequester(userID)
}

// Update is a partial modification of a ticket; nil fields are left untouched.
type Update struct {
	Title          *string
	Description    *string
	Status         *vo.TicketStatus
	Priority       *vo.Priority
	CategoryID     *uint
	ResolutionNote *string
	Assignee       AssigneeChange
}

// UpdateResult describes the side effects of a successful ApplyUpdate.
type UpdateResult struct {
	// PreviousAssigneeID is the assignee the ticket held before the update. Persisting the
	// update must be conditional on the stored assignee still being this value.
	PreviousAssigneeID *uint
	// AutoAssigned is set when the actor was assigned because work started on an
	// unassigned ticket.
	AutoAssigned bool
	// ResolutionComment is the system comment recording a supplied resolution note.
	ResolutionComment *Comment
}

// ApplyUpdate validates upd against the actor's rights and the ticket's state, then
// applies it. Nothing is mutated when an error is returned.
func (t *Ticket) ApplyUpdate(actorID uint, isManager bool, upd Update, now time.Time) (*UpdateResult, error) {
	if err := t.validateUpdate(actorID, isManager, upd); err != nil {
		return nil, err
	}

	result := &UpdateResult{PreviousAssigneeID: copyUintPtr(t.assigneeID)}

	if upd.Title != nil {
		t.title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		t.description = *upd.Description
	}
	if upd.Priority != nil {
		t.priority = *upd.Priority
	}
	if upd.CategoryID != nil {
		id := *upd.CategoryID
		t.categoryID = &id
	}

	note := resolutionNote(upd)
	if note != "" {
		t.resolutionNote = note
	}

	if target, ok := upd.Assignee.Target(actorID); ok {
		t.assigneeID = &target
	} else if upd.Assignee.IsClear() {
		t.assigneeID = nil
	}

	if upd.Status != nil {
		newStatus := *upd.Status
		if isManager && newStatus.IsInProgress() && result.PreviousAssigneeID == nil && upd.Assignee.IsUnspecified() {
			assignee := actorID
			t.assigneeID = &assignee
			result.AutoAssigned = true
		}
		if isManager && newStatus.IsResolved() {
			resolvedAt := now
			t.resolvedAt = &resolvedAt
		}
		t.status = newStatus
	}

	if note != "" {
		author := actorID
		comment, err := NewSystemComment(t.id, &author, fmt.Sprintf("System Update: Ticket Resolved. Note: %s", note), now)
		if err != nil {
			return nil, err
		}
		result.ResolutionComment = comment
	}

	t.updatedAt = now
	return result, nil
}

func (t *Ticket) validateUpdate(actorID uint, isManager bool, upd Update) error {
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return errors.NewValidationError("title is required")
		}
		if len(title) > maxTitleLength {
			return errors.NewValidationError(fmt.Sprintf("title exceeds maximum length of %d characters", maxTitleLength))
		}
	}
	if upd.Description != nil && len(*upd.Description) > maxDescriptionLength {
		return errors.NewValidationError(fmt.Sprintf("description exceeds maximum length of %d characters", maxDescriptionLength))
	}
	if upd.Status != nil && !upd.Status.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid status: %s", *upd.Status))
	}
	if upd.Priority != nil && !upd.Priority.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid priority: %d", *upd.Priority))
	}

	if !isManager {
		if !t.IsRequester(actorID) {
			return newNotAuthorizedError()
		}
		if upd.Status != nil && !upd.Status.SettableByRequester() {
			return errors.NewForbiddenError(msgRequesterStatusDenied)
		}
		if !upd.Assignee.IsUnspecified() || upd.CategoryID != nil || upd.ResolutionNote != nil {
			return errors.NewForbiddenError(msgRequesterFieldDenied)
		}
		return nil
	}

	if target, ok := upd.Assignee.Target(actorID); ok {
		if t.assigneeID != nil && *t.assigneeID != target {
			return &AssigneeConflictError{HolderID: *t.assigneeID}
		}
	}

	if upd.Status != nil && upd.Status.IsResolved() {
		if resolutionNote(upd) == "" && strings.TrimSpace(t.resolutionNote) == "" {
			return errors.NewValidationError(msgResolutionNoteRequired)
		}
	}

	return nil
}

// ReopenByComment moves a finished ticket back to In Progress after its requester
// comments on it. It reports whether the status changed.
func (t *Ticket) ReopenByComment(now time.Time) bool {
	if !t.status.IsFinished() {
		return false
	}
	t.status = vo.StatusInProgress
	t.updatedAt = now
	return true
}

func resolutionNote(upd Update) string {
	if upd.ResolutionNote == nil {
		return ""
	}
	return strings.TrimSpace(*upd.ResolutionNote)
}

func copyUintPtr(p *uint) *uint {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ParseAttachmentList splits a comma-joined list of storage paths, dropping blanks.
func ParseAttachmentList(raw string) []string {
	paths := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
