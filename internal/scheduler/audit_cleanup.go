package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookshelf/internal/tasks"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a 5-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// Enqueuer hands a cleanup run to the background task queue.
type Enqueuer interface {
	EnqueueAuditCleanup(retentionDays int) error
}

// AuditCleanupScheduler periodically purges expired audit events. Runs are
// enqueued on the task queue when one is configured and executed inline
// otherwise.
type AuditCleanupScheduler struct {
	schedule      string
	retentionDays int
	queue         Enqueuer
	cleaner       tasks.AuditEventCleaner

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewAuditCleanupScheduler creates a scheduler. queue may be nil.
func NewAuditCleanupScheduler(schedule string, retentionDays int, queue Enqueuer, cleaner tasks.AuditEventCleaner) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{
		schedule:      schedule,
		retentionDays: retentionDays,
		queue:         queue,
		cleaner:       cleaner,
		cron:          cron.New(cron.WithParser(cronParser)),
	}
}

// Start schedules the cleanup job. An empty schedule disables it.
func (s *AuditCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.schedule == "" {
		log.Printf("Audit cleanup scheduler: disabled")
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.RunNow)
	if err != nil {
		return fmt.Errorf("failed to schedule audit cleanup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Audit cleanup scheduler: started with schedule '%s', retention %d days. Next run: %v",
		s.schedule, s.retentionDays, s.cron.Entry(entryID).Next)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running job and stops the scheduler.
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Audit cleanup scheduler: stopped")
}

// RunNow triggers one cleanup run immediately.
func (s *AuditCleanupScheduler) RunNow() {
	if s.queue != nil {
		if err := s.queue.EnqueueAuditCleanup(s.retentionDays); err != nil {
			log.Printf("Audit cleanup: failed to enqueue task: %v", err)
			return
		}
		log.Printf("Audit cleanup: task enqueued")
		return
	}

	if _, err := tasks.RunAuditCleanup(s.cleaner, s.retentionDays); err != nil {
		log.Printf("Audit cleanup: %v", err)
	}
}

// IsRunning returns whether the scheduler is active.
func (s *AuditCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next cleanup will occur.
func (s *AuditCleanupScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	t := s.cron.Entry(s.entryID).Next
	return &t
}
