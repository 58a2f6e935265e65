package dto

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
)

type UserBriefDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type CategoryBriefDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	SLAHours int    `json:"sla_hours"`
}

type TicketDTO struct {
	ID              uint              `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DescriptionHTML string            `json:"description_html,omitempty"`
	CategoryID      *uint             `json:"category_id"`
	AssetID         *uint             `json:"asset_id"`
	Priority        int               `json:"priority"`
	PriorityLabel   string            `json:"priority_label"`
	Status          string            `json:"status"`
	Attachments     []string          `json:"attachments"`
	RequesterID     uint              `json:"requester_id"`
	AssigneeID      *uint             `json:"assignee_id"`
	ResolutionNote  string            `json:"resolution_note"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	ResolvedAt      *time.Time        `json:"resolved_at"`
	Requester       *UserBriefDTO     `json:"requester,omitempty"`
	Assignee        *UserBriefDTO     `json:"assignee,omitempty"`
	TicketCategory  *CategoryBriefDTO `json:"ticket_category,omitempty"`
	Comments        []CommentDTO      `json:"comments,omitempty"`
}

type CommentDTO struct {
	ID        uint          `json:"id"`
	TicketID  uint          `json:"ticket_id"`
	UserID    *uint         `json:"user_id"`
	User      *UserBriefDTO `json:"user,omitempty"`
	Content   string        `json:"content"`
	Type      string        `json:"type"`
	CreatedAt time.Time     `json:"created_at"`
}

type TicketStatsDTO struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Critical   int64 `json:"critical"`
}

// Lookup holds the display records referenced by a set of tickets.
type Lookup struct {
	Users      map[uint]*user.User
	Categories map[uint]*category.TicketCategory
}

func NewLookup() *Lookup {
	return &Lookup{
		Users:      make(map[uint]*user.User),
		Categories: make(map[uint]*category.TicketCategory),
	}
}

func (l *Lookup) user(id *uint) *UserBriefDTO {
	if l == nil || id == nil {
		return nil
	}
	u, ok := l.Users[*id]
	if !ok {
		return nil
	}
	return ToUserBriefDTO(u)
}

func (l *Lookup) category(id *uint) *CategoryBriefDTO {
	if l == nil || id == nil {
		return nil
	}
	c, ok := l.Categories[*id]
	if !ok {
		return nil
	}
	return &CategoryBriefDTO{ID: c.ID(), Name: c.Name(), Code: c.Code(), SLAHours: c.SLAHours()}
}

// UserName returns the display name of id, or "" when unknown.
func (l *Lookup) UserName(id *uint) string {
	if u := l.user(id); u != nil {
		if u.FullName != "" {
			return u.FullName
		}
		return u.Username
	}
	return ""
}

// CategoryName returns the name of category id, or "" when unknown.
func (l *Lookup) CategoryName(id *uint) string {
	if c := l.category(id); c != nil {
		return c.Name
	}
	return ""
}

func ToUserBriefDTO(u *user.User) *UserBriefDTO {
	if u == nil {
		return nil
	}
	return &UserBriefDTO{
		ID:       u.ID(),
		Username: u.Username(),
		FullName: u.FullName(),
		Role:     u.Role().String(),
	}
}

func ToTicketDTO(t *ticket.Ticket, lookup *Lookup) *TicketDTO {
	if t == nil {
		return nil
	}
	requesterID := t.RequesterID()
	return &TicketDTO{
		ID:             t.ID(),
		Title:          t.Title(),
		Description:    t.Description(),
		CategoryID:     t.CategoryID(),
		AssetID:        t.AssetID(),
		Priority:       t.Priority().Int(),
		PriorityLabel:  t.Priority().Label(),
		Status:         t.Status().String(),
		Attachments:    t.Attachments(),
		RequesterID:    requesterID,
		AssigneeID:     t.AssigneeID(),
		ResolutionNote: t.ResolutionNote(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
		ResolvedAt:     t.ResolvedAt(),
		Requester:      lookup.user(&requesterID),
		Assignee:       lookup.user(t.AssigneeID()),
		TicketCategory: lookup.category(t.CategoryID()),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket, lookup *Lookup) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t, lookup))
	}
	return out
}

func ToCommentDTO(c *ticket.Comment, lookup *Lookup) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		User:      lookup.user(c.UserID()),
		Content:   c.Content(),
		Type:      c.Type().String(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToTicketStatsDTO(s *ticket.Stats) *TicketStatsDTO {
	return &TicketStatsDTO{
		Total:      s.Total,
		Open:       s.Open,
		InProgress: s.InProgress,
		Resolved:   s.Resolved,
		Critical:   s.Critical,
	}
}
