package repositories

import (
	"order-api/models"

	"gorm.io/gorm"
)

type IOrderItemRepository interface {
	FindAll() (*[]models.OrderItem, error)
	Create(newItem models.OrderItem) (*models.OrderItem, error)
	Delete(itemID string) (*models.OrderItem, error)
}

type OrderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) IOrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) FindAll() (*[]models.OrderItem, error) {
	var items []models.OrderItem
	result := r.db.Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *OrderItemRepository) Create(newItem models.OrderItem) (*models.OrderItem, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).Where("id = ?", newItem.OrderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrForeignKeyViolated
		}
		return tx.Create(&newItem).Error
	})
	if err != nil {
		return nil, err
	}
	return &newItem, nil
}

func (r *OrderItemRepository) Delete(itemID string) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.OrderItem{}, "id = ?", itemID).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
