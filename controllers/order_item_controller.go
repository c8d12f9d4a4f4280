package controllers

import (
	"errors"
	"log"
	"net/http"

	"order-api/constants"
	"order-api/dto"
	"order-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IOrderItemController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type OrderItemController struct {
	service services.IOrderItemService
}

func NewOrderItemController(service services.IOrderItemService) IOrderItemController {
	return &OrderItemController{service: service}
}

func (c *OrderItemController) FindAll(ctx *gin.Context) {
	items, err := c.service.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": items})
}

func (c *OrderItemController) Create(ctx *gin.Context) {
	var input dto.CreateOrderItemDirectInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newItem, err := c.service.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrForeignKey):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrOrderNotFound})
		default:
			log.Printf("Create order item error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": newItem})
}

func (c *OrderItemController) Delete(ctx *gin.Context) {
	itemID := ctx.Param("id")
	if err := uuid.Validate(itemID); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	snapshot, err := c.service.Delete(itemID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrOrderItemNotFound})
			return
		}
		log.Printf("Delete order item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": snapshot})
}
