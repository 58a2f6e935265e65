// Package http assembles the gin engine: infrastructure, use cases, handlers and routes.
package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/config"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(ctx, db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// StartScheduler starts the background jobs; the directory refresh runs once immediately.
func (r *Router) StartScheduler() {
	r.schedulerManager.Start()
}
