package store

import (
	"errors"

	"gorm.io/gorm"

	apperrors "invtrack/internal/errors"
	"invtrack/internal/models"
)

// AddUser inserts a new user row. Usernames are unique; a conflicting
// insert surfaces as a storage error, so callers check first.
func (s *Store) AddUser(username, passwordHash string, role models.Role) (*models.User, error) {
	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return user, nil
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by exact, case-sensitive username.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &user, nil
}

// AllUsers returns every user ordered by id ascending.
func (s *Store) AllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return users, nil
}

// UpdateUser persists changes to an existing user row.
func (s *Store) UpdateUser(user *models.User) error {
	if err := s.db.Save(user).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// DeleteUser removes a user row.
func (s *Store) DeleteUser(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CountUsers returns the number of user rows.
func (s *Store) CountUsers() (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return count, nil
}
