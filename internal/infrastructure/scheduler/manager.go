// Package scheduler runs periodic background jobs on a robfig/cron engine.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const (
	DefaultDirectoryRefreshSchedule = "@every 5m"

	directoryRefreshTimeout = 2 * time.Minute
)

// Refresher reloads a cached data set from its upstream.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// SchedulerManager owns the cron engine. Jobs never overlap with themselves and a
// panicking job is recovered and logged.
type SchedulerManager struct {
	cron   *cron.Cron
	logger logger.Interface

	// jobs run once on Start before their first scheduled tick
	immediate []cron.EntryID

	started   bool
	startedMu sync.Mutex
}

func NewSchedulerManager(loc *time.Location, log logger.Interface) *SchedulerManager {
	if loc == nil {
		loc = time.UTC
	}
	cl := cronLogger{log: log}
	return &SchedulerManager{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: log,
	}
}

// RegisterDirectoryRefresh reloads the HR employee cache on schedule, and once at start.
func (m *SchedulerManager) RegisterDirectoryRefresh(schedule string, dir Refresher) error {
	if schedule == "" {
		schedule = DefaultDirectoryRefreshSchedule
	}

	id, err := m.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), directoryRefreshTimeout)
		defer cancel()
		m.executeDirectoryRefresh(ctx, dir)
	})
	if err != nil {
		return err
	}
	m.immediate = append(m.immediate, id)

	m.logger.Infow("registered directory refresh job", "schedule", schedule)
	return nil
}

func (m *SchedulerManager) executeDirectoryRefresh(ctx context.Context, dir Refresher) {
	m.logger.Debugw("executing directory refresh")

	startTime := time.Now()
	if err := dir.Refresh(ctx); err != nil {
		m.logger.Warnw("directory refresh failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Debugw("directory refresh completed",
		"duration", time.Since(startTime),
	)
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if m.started {
		return
	}

	m.cron.Start()
	for _, id := range m.immediate {
		job := m.cron.Entry(id).WrappedJob
		if job != nil {
			go job.Run()
		}
	}
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.cron.Entries()))
}

// Stop waits for running jobs until ctx is done.
func (m *SchedulerManager) Stop(ctx context.Context) error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if !m.started {
		return nil
	}
	m.started = false

	done := m.cron.Stop()
	select {
	case <-done.Done():
		m.logger.Infow("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts logger.Interface to cron.Logger.
type cronLogger struct {
	log logger.Interface
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
