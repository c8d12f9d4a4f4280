package dto

type CreateOrderItemDirectInput struct {
	OrderID   string `json:"orderId" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice" binding:"required"`
}
