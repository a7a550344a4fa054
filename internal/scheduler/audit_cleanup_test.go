package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	mu    sync.Mutex
	calls []int
	err   error
}

func (q *fakeQueue) EnqueueAuditCleanup(retentionDays int) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.calls = append(q.calls, retentionDays)
	return q.err
}

type fakeCleaner struct {
	mu        sync.Mutex
	retention time.Duration
	actions   []string
}

func (c *fakeCleaner) DeleteOldEvents(retention time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retention = retention
	return 3, nil
}

func (c *fakeCleaner) LogMaintenance(action, description string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actions = append(c.actions, action)
}

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("0 3 * * *"))
	assert.NoError(t, ValidateCronSchedule("*/5 * * * *"))
	assert.Error(t, ValidateCronSchedule("not a schedule"))
	assert.Error(t, ValidateCronSchedule("0 0 3 * * *"), "seconds field is not accepted")
}

func TestAuditCleanupScheduler_RunNow(t *testing.T) {
	t.Run("enqueues when a queue is configured", func(t *testing.T) {
		queue := &fakeQueue{}
		cleaner := &fakeCleaner{}
		s := NewAuditCleanupScheduler("0 3 * * *", 14, queue, cleaner)

		s.RunNow()

		assert.Equal(t, []int{14}, queue.calls)
		assert.Empty(t, cleaner.actions, "cleanup must run on the queue, not inline")
	})

	t.Run("enqueue failure is logged only", func(t *testing.T) {
		queue := &fakeQueue{err: errors.New("queue closed")}
		s := NewAuditCleanupScheduler("0 3 * * *", 14, queue, &fakeCleaner{})

		assert.NotPanics(t, s.RunNow)
	})

	t.Run("runs inline without a queue", func(t *testing.T) {
		cleaner := &fakeCleaner{}
		s := NewAuditCleanupScheduler("0 3 * * *", 7, nil, cleaner)

		s.RunNow()

		assert.Equal(t, 7*24*time.Hour, cleaner.retention)
		assert.Equal(t, []string{"cleanup_audit_events"}, cleaner.actions)
	})
}

func TestAuditCleanupScheduler_StartStop(t *testing.T) {
	s := NewAuditCleanupScheduler("0 3 * * *", 30, &fakeQueue{}, &fakeCleaner{})

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.GetNextRunTime()
	require.NotNil(t, next)
	assert.Equal(t, 3, next.Hour())
	assert.True(t, next.After(time.Now()))

	// Second start is a no-op.
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())
}

func TestAuditCleanupScheduler_StopsOnContextCancel(t *testing.T) {
	s := NewAuditCleanupScheduler("0 3 * * *", 30, &fakeQueue{}, &fakeCleaner{})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestAuditCleanupScheduler_Disabled(t *testing.T) {
	s := NewAuditCleanupScheduler("", 30, nil, &fakeCleaner{})

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestAuditCleanupScheduler_InvalidSchedule(t *testing.T) {
	s := NewAuditCleanupScheduler("every day", 30, nil, &fakeCleaner{})

	err := s.Start(context.Background())
	assert.Error(t, err)
	assert.False(t, s.IsRunning())
}
