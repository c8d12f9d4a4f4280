package services

import (
	"testing"

	"order-api/infra"
	"order-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// setupTestDB returns a fresh in-memory SQLite database with the full
// schema applied. DB_NAME is cleared so infra.SetupDB never reaches for
// PostgreSQL inside tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("DB_NAME", "")

	db := infra.SetupDB()
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := models.User{Name: name, Email: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return &user
}

func seedOrder(t *testing.T, db *gorm.DB, userID string, itemCount int) *models.Order {
	t.Helper()
	items := make([]models.OrderItem, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		items = append(items, models.OrderItem{
			Quantity:  i + 1,
			UnitPrice: decimal.RequireFromString("9.99"),
		})
	}
	order := models.Order{
		UserID:    userID,
		Status:    models.OrderStatusPending,
		TotalCost: decimal.RequireFromString("100.00"),
		Items:     items,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}
	return &order
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return count
}
