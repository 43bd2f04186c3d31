package services

import (
	"invtrack/internal/logger"
	"invtrack/internal/models"
	"invtrack/internal/store"
)

// auditService appends entries to the audit trail.
type auditService struct {
	store *store.Store
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(st *store.Store) AuditServicer {
	return &auditService{store: st}
}

// Record appends one audit entry after a confirmed mutation. Errors are
// logged but never propagate: the mutation already succeeded and there
// is no cross-entity transaction to roll back.
func (s *auditService) Record(userID uint, action models.AuditAction, itemID uint, details string) {
	if _, err := s.store.AddAuditEntry(userID, action, itemID, details); err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"item_id", itemID,
		)
	}
}
