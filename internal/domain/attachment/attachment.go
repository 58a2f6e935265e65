// Package attachment defines the rules for files users attach to tickets.
package attachment

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// TicketPrefix is the storage folder for ticket attachments.
const TicketPrefix = "uploads/tickets"

var allowedExtensions = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"zip":  "application/zip",
}

// Store persists attachment blobs addressed by their storage path.
type Store interface {
	Save(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, objectPath string) error
}

// Extension returns the lower-case extension of filename without the dot.
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
}

// ContentType returns the MIME type for an allowed extension.
func ContentType(ext string) (string, bool) {
	ct, ok := allowedExtensions[ext]
	return ct, ok
}

// Validate checks the name and size of an uploaded file.
func Validate(filename string, size, maxBytes int64) error {
	ext := Extension(filename)
	if _, ok := allowedExtensions[ext]; !ok {
		return fmt.Errorf("file type %q is not allowed", ext)
	}
	if size > maxBytes {
		return fmt.Errorf("file %s exceeds %d bytes", filename, maxBytes)
	}
	return nil
}

// NewTicketObjectPath builds a collision-free storage path for an upload.
func NewTicketObjectPath(ext string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s/ticket_%s.%s", TicketPrefix, id, ext)
}
