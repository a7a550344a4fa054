package audit

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mrlokans/bookshelf/internal/database/audit"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
	wg   sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event %s: %v", event.Action, err)
		}
	}()
}

// Wait blocks until every pending LogAsync write has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// LogCreate records the creation of a record.
func (s *Service) LogCreate(ctx context.Context, entityType string, entityID uint, name string) {
	s.logEntity(ctx, entities.AuditEventCreate, entityType, "_create", "Created ", entityID, name)
}

// LogUpdate records a change to an existing record.
func (s *Service) LogUpdate(ctx context.Context, entityType string, entityID uint, name string) {
	s.logEntity(ctx, entities.AuditEventUpdate, entityType, "_update", "Updated ", entityID, name)
}

// LogDelete records a deletion event.
func (s *Service) LogDelete(ctx context.Context, entityType string, entityID uint, name string) {
	s.logEntity(ctx, entities.AuditEventDelete, entityType, "_delete", "Deleted ", entityID, name)
}

func (s *Service) logEntity(ctx context.Context, eventType entities.AuditEventType, entityType, actionSuffix, verb string, entityID uint, name string) {
	event := &entities.AuditEvent{
		EventType:   eventType,
		Action:      entityType + actionSuffix,
		Description: truncate(verb+entityType+": "+name, 500),
		EntityType:  entityType,
		EntityID:    &entityID,
		RequestID:   RequestIDFromContext(ctx),
		Status:      entities.AuditStatusSuccess,
	}

	s.LogAsync(event)
}

// LogMaintenance records a background maintenance run.
func (s *Service) LogMaintenance(action, description string, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventMaintenance,
		Action:      action,
		Description: truncate(description, 500),
		Status:      entities.AuditStatusSuccess,
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
