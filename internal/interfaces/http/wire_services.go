package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/auth"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/config"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/directory"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/metrics"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/permission"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/report"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/scheduler"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/storage"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/services/markdown"
)

const (
	loginRateLimit       = 10
	loginRateLimitWindow = time.Minute
)

// ============================================================
// Section 1: Infrastructure
// ============================================================

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(ctx, cfg, log)

	c.repos = newRepositories(c.db)
	c.txMgr = db.NewTransactionManager(c.db)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	enforcer, err := permission.NewEnforcer(c.db, log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	blobStore, err := storage.NewStore(ctx, cfg.Storage, log.Named("storage"))
	if err != nil {
		return fmt.Errorf("failed to initialize attachment storage: %w", err)
	}
	c.blobStore = blobStore

	c.reportWriter = report.NewXLSXWriter("", log.Named("report"))
	c.markdown = markdown.NewService()

	c.metrics = metrics.New()
	if sqlDB, err := c.db.DB(); err == nil {
		if err := c.metrics.RegisterDB(sqlDB, "opsdesk"); err != nil {
			log.Warnw("failed to register database metrics", "error", err)
		}
	}

	return nil
}

// initRedis connects when redis is enabled. An unreachable server is logged and the
// features backed by it (login throttling, shared directory cache) are turned off.
func initRedis(ctx context.Context, cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, continuing without it", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = redisClient.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient
}

// ============================================================
// Section 2: HR directory
// ============================================================

func (c *Container) initDirectory() error {
	cfg := c.cfg.Directory
	log := c.log.Named("directory")

	source := directory.NewHTTPSource(cfg.URL, cfg.UserID, cfg.Password, cfg.Timeout, log)

	var opts []directory.Option
	if c.redis != nil {
		opts = append(opts, directory.WithSharedCache(directory.NewRedisSnapshotCache(c.redis, "", cfg.CacheTTL)))
	}
	if cfg.BackupFile != "" {
		opts = append(opts, directory.WithBackup(directory.NewBackupFile(cfg.BackupFile)))
	}
	c.directory = directory.NewCachedDirectory(source, cfg.CacheTTL, log, opts...)

	c.schedulerManager = scheduler.NewSchedulerManager(biztime.Location(), c.log.Named("scheduler"))
	if cfg.URL == "" {
		log.Warnw("HR directory url not configured, scheduled refresh disabled")
		return nil
	}
	if err := c.schedulerManager.RegisterDirectoryRefresh(cfg.RefreshSchedule, c.directory); err != nil {
		return fmt.Errorf("failed to register directory refresh job: %w", err)
	}
	return nil
}

// ============================================================
// Section 4: Middlewares
// ============================================================

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.loginRateLimiter = middleware.NewRateLimiter(c.redis, "login", loginRateLimit, loginRateLimitWindow, c.log)
}
