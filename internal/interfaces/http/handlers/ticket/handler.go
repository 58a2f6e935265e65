package ticket

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/common"
	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

const uploadFormField = "files"

// UseCases bundles the executors behind the ticket endpoints.
type UseCases struct {
	Create     usecases.CreateTicketExecutor
	ListMine   usecases.ListMyTicketsExecutor
	Manage     usecases.ManageTicketsExecutor
	ListOpen   usecases.ListOpenTicketsExecutor
	Get        usecases.GetTicketExecutor
	Update     usecases.UpdateTicketExecutor
	Delete     usecases.DeleteTicketExecutor
	AddComment usecases.AddCommentExecutor
	Stats      usecases.GetTicketStatsExecutor
	Export     usecases.ExportTicketsExecutor
	Upload     usecases.UploadAttachmentsExecutor
}

type TicketHandler struct {
	uc     UseCases
	logger logger.Interface
}

func NewTicketHandler(uc UseCases, logger logger.Interface) *TicketHandler {
	return &TicketHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.uc.Create.Execute(c.Request.Context(), req.ToCommand(principal.UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListMyTickets handles GET /tickets/my-tickets
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.ListMine.Execute(c.Request.Context(), usecases.ListMyTicketsQuery{
		UserID: principal.UserID,
		Page:   utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ManageTickets handles GET /tickets/manage
func (h *TicketHandler) ManageTickets(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Manage.Execute(c.Request.Context(), usecases.ManageTicketsQuery{
		Principal: principal,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Page:      utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListOpenTickets handles GET /tickets/manage/open-only
func (h *TicketHandler) ListOpenTickets(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.ListOpen.Execute(c.Request.Context(), usecases.ListOpenTicketsQuery{Principal: principal})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetStats handles GET /tickets/stats/summary
func (h *TicketHandler) GetStats(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	start, end, err := parseDateRange(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Stats.Execute(c.Request.Context(), usecases.GetTicketStatsQuery{
		Principal: principal,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportTickets handles GET /tickets/export and streams the xlsx report. The temporary
// file is removed once the response is written.
func (h *TicketHandler) ExportTickets(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	start, end, err := parseDateRange(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Export.Execute(c.Request.Context(), usecases.ExportTicketsQuery{
		Principal: principal,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer func() {
		if err := os.Remove(result.FilePath); err != nil && !os.IsNotExist(err) {
			h.logger.Warnw("failed to remove export file", "path", result.FilePath, "error", err)
		}
	}()

	c.Header("Content-Type", constants.ContentTypeXLSX)
	c.FileAttachment(result.FilePath, result.Filename)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Get.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:  ticketID,
		Principal: principal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.uc.Update.Execute(c.Request.Context(), req.ToCommand(ticketID, principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID:  ticketID,
		Principal: principal,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.uc.AddComment.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:  ticketID,
		Principal: principal,
		Content:   req.Content,
		Type:      req.Type,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// UploadAttachments handles POST /ticket-upload
func (h *TicketHandler) UploadAttachments(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("multipart form expected"))
		return
	}
	headers := form.File[uploadFormField]
	if len(headers) == 0 {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("No files provided"))
		return
	}

	files := make([]usecases.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, usecases.UploadFile{
			Filename: fh.Filename,
			Size:     fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}

	result, err := h.uc.Upload.Execute(c.Request.Context(), usecases.UploadAttachmentsCommand{
		UserID: principal.UserID,
		Files:  files,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Files uploaded successfully", UploadResponse{
		Paths:         result.Paths,
		AttachmentURL: strings.Join(result.Paths, ","),
	})
}

func parseDateRange(c *gin.Context) (start, end *time.Time, err error) {
	if start, err = common.ParseDateQuery(c, "start_date"); err != nil {
		return nil, nil, err
	}
	if end, err = common.ParseDateQuery(c, "end_date"); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}
