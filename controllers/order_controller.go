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

type IOrderController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type OrderController struct {
	service services.IOrderService
}

func NewOrderController(service services.IOrderService) IOrderController {
	return &OrderController{service: service}
}

func (c *OrderController) FindAll(ctx *gin.Context) {
	orders, err := c.service.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": orders})
}

func (c *OrderController) Create(ctx *gin.Context) {
	var input dto.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newOrder, err := c.service.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrForeignKey):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		default:
			log.Printf("Create order error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": newOrder})
}

func (c *OrderController) Delete(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if err := uuid.Validate(orderID); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	snapshot, err := c.service.Delete(orderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrOrderNotFound})
			return
		}
		log.Printf("Delete order error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": snapshot})
}
