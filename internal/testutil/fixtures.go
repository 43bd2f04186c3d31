package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"invtrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext credential behind every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user of the given role with a unique
// username and the fixture password.
func CreateTestUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", nextID()), role)
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestItem creates an item with defaults that are not low stock.
func CreateTestItem(t *testing.T, db *gorm.DB) *models.Item {
	t.Helper()
	return CreateTestItemWith(t, db, fmt.Sprintf("Test Item %d", nextID()), 10, 9.99, "General", 0)
}

// CreateTestItemWith creates an item with explicit fields.
func CreateTestItemWith(t *testing.T, db *gorm.DB, name string, quantity int, price float64, category string, threshold int) *models.Item {
	t.Helper()

	item := &models.Item{
		Name:              name,
		Quantity:          quantity,
		Price:             price,
		Category:          category,
		LowStockThreshold: threshold,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}
