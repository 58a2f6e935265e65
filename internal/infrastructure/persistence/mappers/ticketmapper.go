package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	attachments, err := json.Marshal(t.Attachments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket attachments (id=%d): %w", t.ID(), err)
	}

	return &models.TicketModel{
		ID:             t.ID(),
		Title:          t.Title(),
		Description:    t.Description(),
		CategoryID:     t.CategoryID(),
		AssetID:        t.AssetID(),
		Priority:       t.Priority().Int(),
		Status:         t.Status().String(),
		Attachments:    attachments,
		RequesterID:    t.RequesterID(),
		AssigneeID:     t.AssigneeID(),
		ResolutionNote: t.ResolutionNote(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
		ResolvedAt:     t.ResolvedAt(),
	}, nil
}

// ToDomain converts the ticket row only; comments are loaded separately.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var attachments []string
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket attachments (id=%d): %w", model.ID, err)
		}
	}

	var resolvedAt = model.ResolvedAt
	if resolvedAt != nil {
		utc := resolvedAt.UTC()
		resolvedAt = &utc
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.CategoryID,
		model.AssetID,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		attachments,
		model.RequesterID,
		model.AssigneeID,
		model.ResolutionNote,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
		resolvedAt,
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		Type:      c.Type().String(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		vo.CommentType(model.Type),
		model.CreatedAt.UTC(),
	)
}
