package store

import (
	apperrors "invtrack/internal/errors"
	"invtrack/internal/models"
)

// defaultAuditLimit bounds list-all audit reads.
const defaultAuditLimit = 500

// AddAuditEntry appends one entry to the audit log. Insertion is the
// only mutation the log ever sees.
func (s *Store) AddAuditEntry(userID uint, action models.AuditAction, itemID uint, details string) (*models.AuditLog, error) {
	entry := &models.AuditLog{
		UserID:  userID,
		Action:  action,
		ItemID:  itemID,
		Details: details,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return entry, nil
}

// AuditLog returns the most recent entries, newest first. A limit of
// zero or less applies the default of 500.
func (s *Store) AuditLog(limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	var entries []models.AuditLog
	err := s.db.Order("timestamp DESC, id DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return entries, nil
}

// AuditLogForItem returns every entry touching the given item, newest
// first. Entries outlive the item itself; they are never cascaded.
func (s *Store) AuditLogForItem(itemID uint) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := s.db.Where("item_id = ?", itemID).Order("timestamp DESC, id DESC").Find(&entries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return entries, nil
}
