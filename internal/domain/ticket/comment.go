package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
)

const maxCommentLength = 5000

// ReopenedByCommentMessage is the timeline entry recorded when a requester's comment
// reopens a finished ticket.
const ReopenedByCommentMessage = "Ticket has been Re-opened by user comment."

type Comment struct {
	id          uint
	ticketID    uint
	userID      *uint
	content     string
	commentType vo.CommentType
	createdAt   time.Time
}

// NewComment creates a user-authored timeline entry.
func NewComment(ticketID uint, userID uint, content string, commentType vo.CommentType, now time.Time) (*Comment, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	author := userID
	return newComment(ticketID, &author, content, commentType, now)
}

// NewSystemComment creates an engine-authored entry; userID is nil when no human
// triggered it directly.
func NewSystemComment(ticketID uint, userID *uint, content string, now time.Time) (*Comment, error) {
	return newComment(ticketID, userID, content, vo.CommentTypeSystem, now)
}

func newComment(ticketID uint, userID *uint, content string, commentType vo.CommentType, now time.Time) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(strings.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}
	if !commentType.IsValid() {
		return nil, fmt.Errorf("invalid comment type: %s", commentType)
	}

	return &Comment{
		ticketID:    ticketID,
		userID:      userID,
		content:     content,
		commentType: commentType,
		createdAt:   now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	userID *uint,
	content string,
	commentType vo.CommentType,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:          id,
		ticketID:    ticketID,
		userID:      userID,
		content:     content,
		commentType: commentType,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) UserID() *uint {
	return c.userID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) Type() vo.CommentType {
	return c.commentType
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
