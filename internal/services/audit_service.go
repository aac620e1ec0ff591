package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

// AuditService records entity lifecycle changes. Auditing is plumbing
// around the business operations: a failed write is logged and never
// fails the operation it describes.
type AuditService interface {
	Record(ctx context.Context, userID int64, action, entityType string, entityID int64, oldValue, newValue any)
}

type auditService struct {
	repo repositories.AuditLogRepository
}

func NewAuditService(repo repositories.AuditLogRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, userID int64, action, entityType string, entityID int64, oldValue, newValue any) {
	entry := &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   marshalValue(oldValue),
		NewValue:   marshalValue(newValue),
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Store(ctx, entry); err != nil {
		log.Printf("[audit][warn] record %s %s/%d failed: %v", action, entityType, entityID, err)
	}
}

func marshalValue(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[audit][warn] marshal value: %v", err)
		return nil
	}
	return b
}
