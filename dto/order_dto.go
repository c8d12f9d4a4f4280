package dto

type CreateOrderItemInput struct {
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice" binding:"required"`
}

type CreateOrderInput struct {
	UserID    string                 `json:"userId" binding:"required,uuid"`
	Status    string                 `json:"status"`
	TotalCost string                 `json:"totalCost" binding:"required"`
	Items     []CreateOrderItemInput `json:"items" binding:"dive"`
}
