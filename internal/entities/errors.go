package entities

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")

	// ErrEmptyOrder отдельно от ErrInvalidArgument, чтобы хендлер мог дать осмысленное сообщение
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidTransition   = errors.New("order status transition is not allowed")
	ErrUnknownStatus       = errors.New("unknown order status")
	ErrConcurrencyConflict = errors.New("concurrent stock update conflict")
)
