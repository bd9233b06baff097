// Package inventory отвечает за остатки товара. Все изменения количества
// идут через Ledger: остаток никогда не уходит в минус, а конкурирующие
// изменения по одному товару сериализуются через compare-and-swap.
package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store — хранилище счётчиков остатков. CompareAndSwapStock записывает
// новое значение только если текущее совпало с old.
type Store interface {
	StockQuantity(ctx context.Context, productID string) (int, error)
	CompareAndSwapStock(ctx context.Context, productID string, old, new int) (bool, error)
}

// Reservation — результат неизменяющей проверки остатка.
type Reservation struct {
	Sufficient bool
	Available  int
}

const defaultMaxAttempts = 5

var casConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecommerce_orders",
	Subsystem: "inventory",
	Name:      "cas_conflicts_total",
	Help:      "Total number of lost compare-and-swap races on stock updates.",
}, []string{"op"})

type Ledger struct {
	logger      *slog.Logger
	store       Store
	maxAttempts int
}

func NewLedger(logger *slog.Logger, store Store) *Ledger {
	return &Ledger{
		logger:      logger.With(slog.String("component", "inventory")),
		store:       store,
		maxAttempts: defaultMaxAttempts,
	}
}

// TryReserve проверяет, хватает ли остатка под requested. Ничего не меняет.
func (l *Ledger) TryReserve(ctx context.Context, productID string, requested int) (Reservation, error) {
	if requested <= 0 {
		return Reservation{}, fmt.Errorf("%w: requested quantity must be positive, got %d", entities.ErrInvalidArgument, requested)
	}

	available, err := l.store.StockQuantity(ctx, productID)
	if err != nil {
		return Reservation{}, fmt.Errorf("failed to read stock of %s: %w", productID, err)
	}

	return Reservation{Sufficient: available >= requested, Available: available}, nil
}

// Decrement атомарно списывает amount со склада и возвращает новый остаток.
// Если товара меньше amount — entities.ErrInsufficientStock.
func (l *Ledger) Decrement(ctx context.Context, productID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: decrement amount must be positive, got %d", entities.ErrInvalidArgument, amount)
	}

	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		current, err := l.store.StockQuantity(ctx, productID)
		if err != nil {
			return 0, fmt.Errorf("failed to read stock of %s: %w", productID, err)
		}
		if current < amount {
			return 0, fmt.Errorf("%w: product %s has %d, requested %d", entities.ErrInsufficientStock, productID, current, amount)
		}

		swapped, err := l.store.CompareAndSwapStock(ctx, productID, current, current-amount)
		if err != nil {
			return 0, fmt.Errorf("failed to update stock of %s: %w", productID, err)
		}
		if swapped {
			return current - amount, nil
		}

		// проиграли гонку, перечитываем остаток
		casConflicts.WithLabelValues("decrement").Inc()
		l.logger.Debug("stock decrement lost cas race",
			slog.String("product_id", productID), slog.Int("attempt", attempt))
	}

	return 0, fmt.Errorf("%w: product %s after %d attempts", entities.ErrConcurrencyConflict, productID, l.maxAttempts)
}

// Restore атомарно возвращает amount на склад (отмена заказа).
// Верхней границы у остатка нет.
func (l *Ledger) Restore(ctx context.Context, productID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: restore amount must be positive, got %d", entities.ErrInvalidArgument, amount)
	}

	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		current, err := l.store.StockQuantity(ctx, productID)
		if err != nil {
			return 0, fmt.Errorf("failed to read stock of %s: %w", productID, err)
		}

		swapped, err := l.store.CompareAndSwapStock(ctx, productID, current, current+amount)
		if err != nil {
			return 0, fmt.Errorf("failed to update stock of %s: %w", productID, err)
		}
		if swapped {
			return current + amount, nil
		}

		casConflicts.WithLabelValues("restore").Inc()
		l.logger.Debug("stock restore lost cas race",
			slog.String("product_id", productID), slog.Int("attempt", attempt))
	}

	return 0, fmt.Errorf("%w: product %s after %d attempts", entities.ErrConcurrencyConflict, productID, l.maxAttempts)
}
