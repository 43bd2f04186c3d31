package models

// Category is a free-text label registered as a side effect of item
// writes. Rows are never removed automatically when their last item is
// deleted.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
