package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/domain/attachment"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

// BlobReader opens stored attachment objects by path.
type BlobReader interface {
	Open(ctx context.Context, objectPath string) (io.ReadCloser, error)
}

// AttachmentHandler streams uploaded ticket attachments back to clients.
type AttachmentHandler struct {
	blobs  BlobReader
	logger logger.Interface
}

func NewAttachmentHandler(blobs BlobReader, log logger.Interface) *AttachmentHandler {
	return &AttachmentHandler{
		blobs:  blobs,
		logger: log,
	}
}

// Download handles GET /uploads/tickets/:name
func (h *AttachmentHandler) Download(c *gin.Context) {
	name := c.Param("name")
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		utils.ErrorResponse(c, http.StatusNotFound, "attachment not found")
		return
	}

	contentType, ok := attachment.ContentType(attachment.Extension(name))
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "attachment not found")
		return
	}

	objectPath := attachment.TicketPrefix + "/" + name
	rc, err := h.blobs.Open(c.Request.Context(), objectPath)
	if err != nil {
		h.logger.Debugw("attachment not available", "path", objectPath, "error", err)
		utils.ErrorResponse(c, http.StatusNotFound, "attachment not found")
		return
	}
	defer rc.Close()

	c.Header("Cache-Control", "private, max-age=3600")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Warnw("failed to stream attachment", "path", objectPath, "error", err)
	}
}
