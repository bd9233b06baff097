package inventory_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/erikm/ecommerce-orders/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore — простое CAS-хранилище для тестов.
type memStore struct {
	mu    sync.Mutex
	stock map[string]int
}

func newMemStore(stock map[string]int) *memStore {
	return &memStore{stock: stock}
}

func (s *memStore) StockQuantity(_ context.Context, productID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	qty, ok := s.stock[productID]
	if !ok {
		return 0, entities.ErrProductNotFound
	}
	return qty, nil
}

func (s *memStore) CompareAndSwapStock(_ context.Context, productID string, old, new int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stock[productID] != old {
		return false, nil
	}
	s.stock[productID] = new
	return true, nil
}

// contendedStore всегда проигрывает CAS.
type contendedStore struct{}

func (contendedStore) StockQuantity(context.Context, string) (int, error) { return 100, nil }

func (contendedStore) CompareAndSwapStock(context.Context, string, int, int) (bool, error) {
	return false, nil
}

func newLedger(store inventory.Store) *inventory.Ledger {
	return inventory.NewLedger(slog.New(slog.NewTextHandler(io.Discard, nil)), store)
}

func TestLedger_TryReserve(t *testing.T) {
	store := newMemStore(map[string]int{"p1": 5})
	ledger := newLedger(store)
	ctx := context.Background()

	res, err := ledger.TryReserve(ctx, "p1", 3)
	require.NoError(t, err)
	assert.True(t, res.Sufficient)
	assert.Equal(t, 5, res.Available)

	res, err = ledger.TryReserve(ctx, "p1", 6)
	require.NoError(t, err)
	assert.False(t, res.Sufficient)
	assert.Equal(t, 5, res.Available)

	// проверка ничего не меняет
	qty, err := store.StockQuantity(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, qty)

	_, err = ledger.TryReserve(ctx, "p1", 0)
	assert.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = ledger.TryReserve(ctx, "missing", 1)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestLedger_Decrement(t *testing.T) {
	ctx := context.Background()

	t.Run("subtracts and returns new quantity", func(t *testing.T) {
		ledger := newLedger(newMemStore(map[string]int{"p1": 5}))

		got, err := ledger.Decrement(ctx, "p1", 3)
		require.NoError(t, err)
		assert.Equal(t, 2, got)

		got, err = ledger.Decrement(ctx, "p1", 2)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		store := newMemStore(map[string]int{"p1": 2})
		ledger := newLedger(store)

		_, err := ledger.Decrement(ctx, "p1", 3)
		assert.ErrorIs(t, err, entities.ErrInsufficientStock)

		qty, err := store.StockQuantity(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 2, qty)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		ledger := newLedger(newMemStore(map[string]int{"p1": 2}))
		_, err := ledger.Decrement(ctx, "p1", 0)
		assert.ErrorIs(t, err, entities.ErrInvalidArgument)
	})

	t.Run("conflict after retry budget", func(t *testing.T) {
		ledger := newLedger(contendedStore{})
		_, err := ledger.Decrement(ctx, "p1", 1)
		assert.ErrorIs(t, err, entities.ErrConcurrencyConflict)
	})
}

func TestLedger_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("adds back without upper bound", func(t *testing.T) {
		ledger := newLedger(newMemStore(map[string]int{"p1": 0}))

		got, err := ledger.Restore(ctx, "p1", 1000000)
		require.NoError(t, err)
		assert.Equal(t, 1000000, got)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		ledger := newLedger(newMemStore(map[string]int{"p1": 0}))
		_, err := ledger.Restore(ctx, "p1", -1)
		assert.ErrorIs(t, err, entities.ErrInvalidArgument)
	})

	t.Run("conflict after retry budget", func(t *testing.T) {
		ledger := newLedger(contendedStore{})
		_, err := ledger.Restore(ctx, "p1", 1)
		assert.ErrorIs(t, err, entities.ErrConcurrencyConflict)
	})
}

// Параллельные списания по одному товару: остаток не уходит в минус,
// суммарно списывается ровно столько, сколько было.
func TestLedger_ConcurrentDecrements(t *testing.T) {
	const (
		initial = 50
		workers = 100
	)

	store := newMemStore(map[string]int{"p1": initial})
	ledger := newLedger(store)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.Decrement(ctx, "p1", 1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	qty, err := store.StockQuantity(ctx, "p1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, qty, 0)
	assert.Equal(t, initial-succeeded, qty)
}
