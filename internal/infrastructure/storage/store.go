package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/opsdesk-inc/opsdesk/internal/domain/attachment"
	"github.com/opsdesk-inc/opsdesk/internal/shared/config"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const (
	BackendLocal = "local"
	BackendMinio = "minio"
)

// Backend stores attachments and streams them back for download.
type Backend interface {
	attachment.Store
	Open(ctx context.Context, objectPath string) (io.ReadCloser, error)
}

// NewStore builds the backend selected by cfg.Backend; empty means local.
func NewStore(ctx context.Context, cfg config.StorageConfig, log logger.Interface) (Backend, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendLocal:
		store, err := NewLocalStore(cfg.LocalRoot)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendMinio:
		store, err := NewMinioStore(ctx, cfg.Minio, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Backend)
	}
}
