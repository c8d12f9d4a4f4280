package repositories

import (
	"order-api/models"

	"gorm.io/gorm"
)

type IOrderRepository interface {
	FindAll() (*[]models.Order, error)
	FindById(orderID string) (*models.Order, error)
	Create(newOrder models.Order) (*models.Order, error)
	Delete(orderID string) (*models.Order, error)
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindAll() (*[]models.Order, error) {
	var orders []models.Order
	result := r.db.Preload("User").Preload("Items").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return &orders, nil
}

func (r *OrderRepository) FindById(orderID string) (*models.Order, error) {
	var order models.Order
	result := r.db.Preload("User").Preload("Items").First(&order, "id = ?", orderID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &order, nil
}

// Create writes the order row and all of its item rows in one
// transaction. The owning user is checked inside the same transaction;
// a missing user aborts the whole write, so no partial order is ever
// visible to readers.
func (r *OrderRepository) Create(newOrder models.Order) (*models.Order, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", newOrder.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrForeignKeyViolated
		}
		return tx.Create(&newOrder).Error
	})
	if err != nil {
		return nil, err
	}
	return &newOrder, nil
}

func (r *OrderRepository) Delete(orderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "id = ?", orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
