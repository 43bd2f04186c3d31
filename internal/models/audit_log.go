package models

import "time"

// AuditAction tags the kind of mutation an audit entry records.
type AuditAction string

const (
	ActionAddItem    AuditAction = "ADD_ITEM"
	ActionUpdateItem AuditAction = "UPDATE_ITEM"
	ActionDeleteItem AuditAction = "DELETE_ITEM"
	ActionExportCSV  AuditAction = "EXPORT_CSV"
	ActionImportCSV  AuditAction = "IMPORT_CSV"
)

// AuditLog records one mutating action. Entries are append-only: the
// core never updates or deletes them.
type AuditLog struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"index" json:"user_id"`
	Action    AuditAction `gorm:"not null" json:"action"`
	ItemID    uint        `json:"item_id"`
	Details   string      `json:"details"`
	Timestamp time.Time   `gorm:"autoCreateTime" json:"timestamp"`
}

// TableName keeps the singular table name used by the schema.
func (AuditLog) TableName() string { return "audit_log" }
