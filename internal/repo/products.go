package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erikm/ecommerce-orders/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var productColumns = []string{
	"product_id", "sku", "name", "price", "stock_quantity", "is_active", "created_at",
}

// productsRepo кроме поиска товара реализует inventory.Store:
// условный UPDATE по старому значению остатка и есть наш compare-and-swap.
type productsRepo struct {
	base
}

func NewProductsRepo(db *sqlx.DB) *productsRepo {
	return &productsRepo{base: newBase(db)}
}

func (r *productsRepo) ProductBySKU(ctx context.Context, sku string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"sku": sku, "is_active": true}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *productsRepo) StockQuantity(ctx context.Context, productID string) (int, error) {
	query, args := r.qb.Select("stock_quantity").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var quantity int
	err := r.getContext(ctx, &quantity, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrProductNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get stock quantity: %w", err)
	}
	return quantity, nil
}

func (r *productsRepo) CompareAndSwapStock(ctx context.Context, productID string, old, new int) (bool, error) {
	query, args := r.qb.Update("products").
		Set("stock_quantity", new).
		Where(sq.Eq{"product_id": productID, "stock_quantity": old}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to swap stock quantity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check swapped rows: %w", err)
	}
	return affected == 1, nil
}
