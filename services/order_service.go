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

type IOrderService interface {
	FindAll() (*[]models.Order, error)
	Create(input dto.CreateOrderInput) (*models.Order, error)
	Delete(orderID string) (*models.Order, error)
}

type OrderService struct {
	repository repositories.IOrderRepository
}

func NewOrderService(repository repositories.IOrderRepository) IOrderService {
	return &OrderService{repository: repository}
}

func (s *OrderService) FindAll() (*[]models.Order, error) {
	return s.repository.FindAll()
}

func (s *OrderService) Create(input dto.CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order requires at least one item", ErrValidation)
	}

	status := models.OrderStatus(input.Status)
	if input.Status == "" {
		status = models.OrderStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, input.Status)
	}

	totalCost, err := decimal.NewFromString(input.TotalCost)
	if err != nil {
		return nil, fmt.Errorf("%w: totalCost must be a decimal number", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		unitPrice, err := decimal.NewFromString(it.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: unitPrice must be a decimal number", ErrValidation)
		}
		items = append(items, models.OrderItem{
			Quantity:  it.Quantity,
			UnitPrice: unitPrice.Round(2),
		})
	}

	newOrder := models.Order{
		UserID:    input.UserID,
		Status:    status,
		TotalCost: totalCost.Round(2),
		Items:     items,
	}
	created, err := s.repository.Create(newOrder)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("%w: user %s", ErrForeignKey, input.UserID)
		}
		return nil, err
	}
	return created, nil
}

func (s *OrderService) Delete(orderID string) (*models.Order, error) {
	snapshot, err := s.repository.Delete(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return nil, err
	}
	return snapshot, nil
}
