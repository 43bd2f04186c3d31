package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "invtrack/internal/errors"
	"invtrack/internal/models"
)

// ItemFields holds the mutable fields of an item. The id and creation
// timestamp are store-assigned and immutable.
type ItemFields struct {
	Name              string
	Quantity          int
	Price             float64
	Category          string
	LowStockThreshold int
}

// AddItem inserts a new item, assigning its id and timestamps.
func (s *Store) AddItem(f ItemFields) (*models.Item, error) {
	item := &models.Item{
		Name:              f.Name,
		Quantity:          f.Quantity,
		Price:             f.Price,
		Category:          f.Category,
		LowStockThreshold: f.LowStockThreshold,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return item, nil
}

// GetItem retrieves an item by id.
func (s *Store) GetItem(id uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &item, nil
}

// AllItems returns every item ordered by id ascending.
func (s *Store) AllItems() ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return items, nil
}

// SearchItems returns items whose name contains the query,
// case-insensitively, ordered by id.
func (s *Store) SearchItems(query string) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + strings.ToLower(query) + "%"
	if err := s.db.Where("LOWER(name) LIKE ?", pattern).Order("id").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return items, nil
}

// ItemsByCategory returns items with an exact category match, ordered by id.
func (s *Store) ItemsByCategory(category string) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Where("category = ?", category).Order("id").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return items, nil
}

// LowStockItems returns items at or below a positive threshold, ordered
// by quantity ascending so the worst shortfall comes first.
func (s *Store) LowStockItems() ([]models.Item, error) {
	var items []models.Item
	err := s.db.
		Where("low_stock_threshold > 0 AND quantity <= low_stock_threshold").
		Order("quantity").
		Find(&items).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return items, nil
}

// UpdateItem replaces the mutable fields of an item, refreshing
// updated_at and leaving id and created_at untouched.
func (s *Store) UpdateItem(id uint, f ItemFields) (*models.Item, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	item.Name = f.Name
	item.Quantity = f.Quantity
	item.Price = f.Price
	item.Category = f.Category
	item.LowStockThreshold = f.LowStockThreshold

	if err := s.db.Save(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return item, nil
}

// DeleteItem removes an item permanently. Deleting an absent id fails
// with ItemNotFound rather than succeeding silently.
func (s *Store) DeleteItem(id uint) error {
	result := s.db.Delete(&models.Item{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}

// CountItems returns the total number of items.
func (s *Store) CountItems() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return count, nil
}

// TotalValue returns sum(quantity*price) across all items, zero when
// the store is empty. Computed in SQL to avoid materializing the full
// item list for a scalar.
func (s *Store) TotalValue() (float64, error) {
	var value float64
	err := s.db.Model(&models.Item{}).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&value).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return value, nil
}

// LowStockCount returns the number of items currently low on stock.
func (s *Store) LowStockCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Item{}).
		Where("low_stock_threshold > 0 AND quantity <= low_stock_threshold").
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return count, nil
}
