// Package pricing считает стоимость позиций и итог заказа.
// Только чистые функции, вся арифметика — decimal с фиксированной точкой,
// чтобы не ловить ошибки округления двоичных float.
package pricing

import (
	"fmt"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/shopspring/decimal"
)

// Subtotal возвращает quantity * unitPrice.
func Subtotal(quantity int, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: quantity must be positive, got %d", entities.ErrInvalidArgument, quantity)
	}
	if !unitPrice.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: unit price must be positive, got %s", entities.ErrInvalidArgument, unitPrice)
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// Total суммирует подытоги. Сложение decimal ассоциативно, порядок не важен.
func Total(subtotals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subtotals {
		total = total.Add(s)
	}
	return total
}
