package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestSchedulerManager_RunsDirectoryRefreshOnStart(t *testing.T) {
	m := NewSchedulerManager(time.UTC, logger.NewNopLogger())
	ref := &countingRefresher{}

	require.NoError(t, m.RegisterDirectoryRefresh("@every 1h", ref))
	m.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, m.Stop(ctx))
	}()

	assert.Eventually(t, func() bool { return ref.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestSchedulerManager_FailedRefreshIsLoggedNotFatal(t *testing.T) {
	m := NewSchedulerManager(nil, logger.NewNopLogger())
	ref := &countingRefresher{err: fmt.Errorf("HR down")}

	require.NoError(t, m.RegisterDirectoryRefresh("", ref))
	m.Start()
	assert.Eventually(t, func() bool { return ref.calls.Load() >= 1 }, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, m.Stop(ctx))
}

func TestSchedulerManager_InvalidSchedule(t *testing.T) {
	m := NewSchedulerManager(time.UTC, logger.NewNopLogger())
	assert.Error(t, m.RegisterDirectoryRefresh("not a cron", &countingRefresher{}))
}

func TestSchedulerManager_StopBeforeStart(t *testing.T) {
	m := NewSchedulerManager(time.UTC, logger.NewNopLogger())
	assert.NoError(t, m.Stop(context.Background()))
}
