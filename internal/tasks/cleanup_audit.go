package tasks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// CleanupAuditEventsName is the queue name of CleanupAuditEventsTask.
const CleanupAuditEventsName = "cleanup_audit_events"

// DefaultAuditRetentionDays applies when a task carries no retention.
const DefaultAuditRetentionDays = 30

// AuditEventCleaner deletes expired audit events and records the run.
// *audit.Service implements it.
type AuditEventCleaner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
	LogMaintenance(action, description string, err error)
}

// CleanupAuditEventsTask removes audit events older than RetentionDays.
type CleanupAuditEventsTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for audit cleanup tasks.
func (t CleanupAuditEventsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        CleanupAuditEventsName,
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RunAuditCleanup deletes events older than retentionDays and records a
// maintenance event with the outcome.
func RunAuditCleanup(cleaner AuditEventCleaner, retentionDays int) (int64, error) {
	if cleaner == nil {
		return 0, errors.New("audit event cleaner not configured")
	}
	if retentionDays <= 0 {
		retentionDays = DefaultAuditRetentionDays
	}

	deleted, err := cleaner.DeleteOldEvents(time.Duration(retentionDays) * 24 * time.Hour)
	if err != nil {
		err = fmt.Errorf("cleanup audit events: %w", err)
		cleaner.LogMaintenance(CleanupAuditEventsName, "Audit cleanup failed", err)
		return 0, err
	}

	cleaner.LogMaintenance(CleanupAuditEventsName,
		fmt.Sprintf("Deleted %d audit events older than %d days", deleted, retentionDays), nil)
	log.Printf("[TASK] Cleaned up %d audit events older than %d days", deleted, retentionDays)
	return deleted, nil
}

// CleanupAuditEventsProcessor creates a processor function for CleanupAuditEventsTask.
func CleanupAuditEventsProcessor(cleaner AuditEventCleaner) backlite.QueueProcessor[CleanupAuditEventsTask] {
	return func(ctx context.Context, task CleanupAuditEventsTask) error {
		_, err := RunAuditCleanup(cleaner, task.RetentionDays)
		return err
	}
}

// NewCleanupAuditEventsQueue creates a backlite queue for audit cleanup tasks.
func NewCleanupAuditEventsQueue(cleaner AuditEventCleaner) backlite.Queue {
	return backlite.NewQueue(CleanupAuditEventsProcessor(cleaner))
}

// EnqueueAuditCleanup submits one CleanupAuditEventsTask.
func (c *Client) EnqueueAuditCleanup(retentionDays int) error {
	_, err := c.Add(CleanupAuditEventsTask{RetentionDays: retentionDays}).Save()
	return err
}
