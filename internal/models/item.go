package models

import "time"

// Item represents a tracked inventory item.
type Item struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"not null;index" json:"name"`
	Quantity          int       `gorm:"default:0;index" json:"quantity"`
	Price             float64   `gorm:"default:0" json:"price"`
	Category          string    `gorm:"index" json:"category"`
	LowStockThreshold int       `gorm:"default:0" json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// IsLowStock reports whether the item has fallen to or below its
// threshold. A threshold of zero disables alerting entirely, so the
// item is never low regardless of quantity.
func (i *Item) IsLowStock() bool {
	return i.LowStockThreshold > 0 && i.Quantity <= i.LowStockThreshold
}
