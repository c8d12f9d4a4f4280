package services

import (
	"errors"
	"fmt"

	"order-api/dto"
	"order-api/models"
	"order-api/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IOrderItemService interface {
	FindAll() (*[]models.OrderItem, error)
	Create(input dto.CreateOrderItemDirectInput) (*models.OrderItem, error)
	Delete(itemID string) (*models.OrderItem, error)
}

type OrderItemService struct {
	repository repositories.IOrderItemRepository
}

func NewOrderItemService(repository repositories.IOrderItemRepository) IOrderItemService {
	return &OrderItemService{repository: repository}
}

func (s *OrderItemService) FindAll() (*[]models.OrderItem, error) {
	return s.repository.FindAll()
}

func (s *OrderItemService) Create(input dto.CreateOrderItemDirectInput) (*models.OrderItem, error) {
	unitPrice, err := decimal.NewFromString(input.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: unitPrice must be a decimal number", ErrValidation)
	}

	newItem := models.OrderItem{
		OrderID:   input.OrderID,
		Quantity:  input.Quantity,
		UnitPrice: unitPrice.Round(2),
	}
	created, err := s.repository.Create(newItem)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("%w: order %s", ErrForeignKey, input.OrderID)
		}
		return nil, err
	}
	return created, nil
}

func (s *OrderItemService) Delete(itemID string) (*models.OrderItem, error) {
	snapshot, err := s.repository.Delete(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order item %s", ErrNotFound, itemID)
		}
		return nil, err
	}
	return snapshot, nil
}
