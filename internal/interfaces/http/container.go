package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/auth"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/config"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/directory"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/metrics"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/permission"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/report"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/scheduler"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/storage"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases, handlers,
// and background services. It wires everything together and provides Shutdown for
// graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimiter     *middleware.RateLimiter

	// Infrastructure services
	jwtSvc       *auth.JWTService
	hasher       *auth.BcryptHasher
	enforcer     *permission.Enforcer
	txMgr        *db.TransactionManager
	blobStore    storage.Backend
	reportWriter *report.XLSXWriter
	metrics      *metrics.Metrics
	markdown     markdown.Service

	// Background services
	directory        *directory.CachedDirectory
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Policy, Storage, Metrics
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	// Section 2: HR directory and its refresh job
	if err := c.initDirectory(); err != nil {
		return nil, err
	}

	// Section 3: Use cases and handlers
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	// Section 4: Middlewares
	c.initMiddlewares()

	return c, nil
}

// Shutdown stops background jobs and releases the redis connection.
func (c *Container) Shutdown(ctx context.Context) error {
	var firstErr error

	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(ctx); err != nil {
			c.log.Warnw("scheduler did not stop cleanly", "error", err)
			firstErr = fmt.Errorf("stop scheduler: %w", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("close redis: %w", err)
			}
		}
	}

	return firstErr
}
