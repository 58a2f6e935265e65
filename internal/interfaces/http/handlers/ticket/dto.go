package ticket

import (
	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	CategoryID  *uint  `json:"category_id"`
	AssetID     *uint  `json:"asset_id"`
	Priority    int    `json:"priority" binding:"omitempty,min=1,max=4"`
	// AttachmentURL is the comma-joined list of paths returned by /ticket-upload.
	AttachmentURL string `json:"attachment_url"`
}

func (r *CreateTicketRequest) ToCommand(requesterID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:         r.Title,
		Description:   r.Description,
		CategoryID:    r.CategoryID,
		AssetID:       r.AssetID,
		Priority:      r.Priority,
		AttachmentURL: r.AttachmentURL,
		RequesterID:   requesterID,
	}
}

// UpdateTicketRequest is a partial update. assignee_id uses the wire encoding:
// null or absent leaves the assignee, 0 clears it, -1 assigns the caller.
type UpdateTicketRequest struct {
	Title          *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description    *string `json:"description"`
	Status         *string `json:"status" binding:"omitempty,ticket_status"`
	Priority       *int    `json:"priority" binding:"omitempty,min=1,max=4"`
	CategoryID     *uint   `json:"category_id"`
	ResolutionNote *string `json:"resolution_note"`
	AssigneeID     *int64  `json:"assignee_id" binding:"omitempty,min=-1"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint, principal policy.Principal) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:       ticketID,
		Principal:      principal,
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       r.Priority,
		CategoryID:     r.CategoryID,
		ResolutionNote: r.ResolutionNote,
		AssigneeID:     r.AssigneeID,
	}
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=Comment System Internal"`
}

type UploadResponse struct {
	Paths []string `json:"paths"`
	// AttachmentURL joins Paths the way CreateTicketRequest expects them.
	AttachmentURL string `json:"attachment_url"`
}
