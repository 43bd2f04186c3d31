// Package store implements the persistent entity store over GORM,
// insulating callers from the underlying storage engine. Every
// "get many" read materializes its full result before returning;
// callers page and sort in memory.
package store

import "gorm.io/gorm"

// Store performs durable CRUD plus filtered, ordered reads for items,
// users, categories and the audit log.
type Store struct {
	db *gorm.DB
}

// New creates a Store over the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
