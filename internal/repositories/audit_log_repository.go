package repositories

import (
	"context"
	"database/sql"

	"taskboard/internal/models"
)

// AuditLogRepository is append-only; entries are kept for inspection in
// the database, there is no read path in the API.
type AuditLogRepository interface {
	Store(ctx context.Context, entry *models.AuditLog) error
}

type auditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Store(ctx context.Context, entry *models.AuditLog) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO audit_logs (user_id, action, entity_type, entity_id, old_value, new_value, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at`,
		entry.UserID, entry.Action, entry.EntityType, entry.EntityID,
		entry.OldValue, entry.NewValue, entry.CreatedAt,
	).Scan(&entry.ID, &entry.CreatedAt)
}
