package repositories

import (
	"order-api/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	FindAll(includeOrders bool) (*[]models.User, error)
	FindById(userID string) (*models.User, error)
	Create(newUser models.User) (*models.User, error)
	Delete(userID string) (*models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll(includeOrders bool) (*[]models.User, error) {
	var users []models.User
	query := r.db
	if includeOrders {
		query = query.Preload("Orders.Items")
	}
	result := query.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}

func (r *UserRepository) FindById(userID string) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Orders.Items").First(&user, "id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) Create(newUser models.User) (*models.User, error) {
	result := r.db.Create(&newUser)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newUser, nil
}

// Delete removes the user and, in the same transaction, every order and
// order item that belongs to it. The row is read (with its full order
// graph) before deletion so the caller gets a snapshot of what was removed.
func (r *UserRepository) Delete(userID string) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Orders.Items").First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		orderIDs := tx.Model(&models.Order{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
