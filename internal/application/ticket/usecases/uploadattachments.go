package usecases

import (
	"context"
	"io"

	"github.com/opsdesk-inc/opsdesk/internal/domain/attachment"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// UploadFile is one part of a multipart upload.
type UploadFile struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

type UploadAttachmentsCommand struct {
	UserID uint
	Files  []UploadFile
}

type UploadAttachmentsResult struct {
	Paths []string
}

type UploadAttachmentsUseCase struct {
	store    attachment.Store
	maxBytes int64
	logger   logger.Interface
}

func NewUploadAttachmentsUseCase(store attachment.Store, maxBytes int64, logger logger.Interface) *UploadAttachmentsUseCase {
	return &UploadAttachmentsUseCase{
		store:    store,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Execute stores every acceptable file and skips the rest. It fails only when nothing
// could be stored.
func (uc *UploadAttachmentsUseCase) Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*UploadAttachmentsResult, error) {
	uc.logger.Infow("executing upload attachments use case", "user_id", cmd.UserID, "files", len(cmd.Files))

	paths := make([]string, 0, len(cmd.Files))
	for _, f := range cmd.Files {
		if err := attachment.Validate(f.Filename, f.Size, uc.maxBytes); err != nil {
			uc.logger.Warnw("skipping attachment", "filename", f.Filename, "error", err)
			continue
		}

		path, err := uc.save(ctx, f)
		if err != nil {
			uc.logger.Errorw("failed to store attachment", "filename", f.Filename, "error", err)
			continue
		}
		paths = append(paths, path)
	}

	if len(paths) == 0 {
		return nil, errors.NewBadRequestError("No valid files uploaded")
	}

	uc.logger.Infow("attachments uploaded", "user_id", cmd.UserID, "count", len(paths))
	return &UploadAttachmentsResult{Paths: paths}, nil
}

func (uc *UploadAttachmentsUseCase) save(ctx context.Context, f UploadFile) (string, error) {
	ext := attachment.Extension(f.Filename)
	contentType, _ := attachment.ContentType(ext)
	path := attachment.NewTicketObjectPath(ext)

	r, err := f.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()

	if err := uc.store.Save(ctx, path, r, f.Size, contentType); err != nil {
		return "", err
	}
	return path, nil
}
