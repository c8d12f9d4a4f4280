package constants

// エラーメッセージ
const (
	ErrUserNotFound      = "User not found"
	ErrOrderNotFound     = "Order not found"
	ErrOrderItemNotFound = "Order item not found"
	ErrEmailTaken        = "Email already registered"
	ErrUnexpected        = "Unexpected error"
	ErrInvalidID         = "Invalid id"
	ErrInvalidInput      = "Invalid input"
)
