package store

import (
	apperrors "invtrack/internal/errors"
	"invtrack/internal/models"
)

// EnsureCategory registers a category name, returning the existing row
// when the name is already present.
func (s *Store) EnsureCategory(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &category, nil
}

// AllCategories returns every category ordered by name.
func (s *Store) AllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return categories, nil
}

// DeleteCategory removes a category row by id. Items keep their
// free-text category label.
func (s *Store) DeleteCategory(id uint) error {
	result := s.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
