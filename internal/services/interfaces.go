package services

import (
	"invtrack/internal/auth"
	"invtrack/internal/models"
)

// ItemInput holds the caller-supplied fields of an item write.
type ItemInput struct {
	Name              string  `validate:"required,max=50"`
	Quantity          int
	Price             float64 `validate:"gte=0"`
	Category          string
	LowStockThreshold int
}

// ImportResult reports the outcome of a CSV import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Statistics aggregates inventory totals, each backed by a direct store
// query rather than a scan of the full item list.
type Statistics struct {
	TotalItems    int64    `json:"total_items"`
	TotalValue    float64  `json:"total_value"`
	LowStockCount int64    `json:"low_stock_count"`
	Categories    []string `json:"categories"`
}

// ItemServicer defines the operation surface the application layer
// invokes. Mutations take the acting session; reads are ungated.
type ItemServicer interface {
	AddItem(sess *auth.Session, input ItemInput) (*models.Item, error)
	UpdateItem(sess *auth.Session, id uint, input ItemInput) (*models.Item, error)
	DeleteItem(sess *auth.Session, id uint) error
	GetItem(id uint) (*models.Item, error)
	ListItems(field SortField, order SortOrder) ([]models.Item, error)
	SearchItems(query string) ([]models.Item, error)
	ItemsByCategory(category string) ([]models.Item, error)
	LowStockItems() ([]models.Item, error)
	ExportCSV(sess *auth.Session, path string) (int, error)
	ImportCSV(sess *auth.Session, path string) (ImportResult, error)
	Statistics() (*Statistics, error)
	AuditLog(limit int) ([]models.AuditLog, error)
	AuditLogForItem(itemID uint) ([]models.AuditLog, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Record(userID uint, action models.AuditAction, itemID uint, details string)
}
