package directory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/opsdesk-inc/opsdesk/internal/domain/employee"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const DefaultCacheTTL = 5 * time.Minute

var _ employee.Directory = (*CachedDirectory)(nil)

// CachedDirectory serves the employee list from process memory, then the shared cache,
// then the HR source. When the source fails it falls back to the last good snapshot:
// the expired in-memory copy first, the backup file second.
type CachedDirectory struct {
	source employee.Source
	shared SnapshotCache
	backup *BackupFile
	ttl    time.Duration
	now    func() time.Time
	logger logger.Interface

	mu        sync.RWMutex
	snapshot  []employee.Employee
	expiresAt time.Time

	group singleflight.Group
}

type Option func(*CachedDirectory)

func WithSharedCache(c SnapshotCache) Option {
	return func(d *CachedDirectory) { d.shared = c }
}

func WithBackup(b *BackupFile) Option {
	return func(d *CachedDirectory) { d.backup = b }
}

func WithClock(now func() time.Time) Option {
	return func(d *CachedDirectory) { d.now = now }
}

func NewCachedDirectory(source employee.Source, ttl time.Duration, log logger.Interface, opts ...Option) *CachedDirectory {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	d := &CachedDirectory{
		source: source,
		ttl:    ttl,
		now:    time.Now,
		logger: log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *CachedDirectory) List(ctx context.Context) ([]employee.Employee, error) {
	if employees, ok := d.fresh(); ok {
		return employees, nil
	}

	result, err, _ := d.group.Do("list", func() (any, error) {
		if employees, ok := d.fresh(); ok {
			return employees, nil
		}
		return d.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]employee.Employee), nil
}

// Refresh fetches from the source and replaces every cache level. On failure the
// current snapshot is kept.
func (d *CachedDirectory) Refresh(ctx context.Context) error {
	_, err, _ := d.group.Do("refresh", func() (any, error) {
		return d.fetchAndStore(ctx)
	})
	return err
}

func (d *CachedDirectory) fresh() ([]employee.Employee, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.snapshot != nil && d.now().Before(d.expiresAt) {
		return d.snapshot, true
	}
	return nil, false
}

func (d *CachedDirectory) load(ctx context.Context) ([]employee.Employee, error) {
	if d.shared != nil {
		employees, err := d.shared.Get(ctx)
		if err != nil {
			d.logger.Warnw("shared employee cache unavailable", "error", err)
		} else if len(employees) > 0 {
			d.store(employees)
			return employees, nil
		}
	}

	employees, err := d.fetchAndStore(ctx)
	if err == nil {
		return employees, nil
	}

	d.logger.Warnw("HR system unreachable, serving last known employee list", "error", err)

	d.mu.RLock()
	stale := d.snapshot
	d.mu.RUnlock()
	if stale != nil {
		return stale, nil
	}

	if d.backup != nil {
		backup, berr := d.backup.Load()
		if berr == nil {
			return backup, nil
		}
		d.logger.Warnw("employee backup unavailable", "error", berr)
	}
	return nil, fmt.Errorf("load employees: %w", err)
}

func (d *CachedDirectory) fetchAndStore(ctx context.Context) ([]employee.Employee, error) {
	employees, err := d.source.FetchEmployees(ctx)
	if err != nil {
		return nil, err
	}

	d.store(employees)

	if d.shared != nil {
		if err := d.shared.Set(ctx, employees); err != nil {
			d.logger.Warnw("failed to update shared employee cache", "error", err)
		}
	}
	if d.backup != nil {
		if err := d.backup.Save(employees); err != nil {
			d.logger.Errorw("failed to write employee backup", "error", err)
		}
	}

	d.logger.Infow("employee directory refreshed", "count", len(employees))
	return employees, nil
}

func (d *CachedDirectory) store(employees []employee.Employee) {
	d.mu.Lock()
	d.snapshot = employees
	d.expiresAt = d.now().Add(d.ttl)
	d.mu.Unlock()
}
