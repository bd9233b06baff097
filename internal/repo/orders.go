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

var orderColumns = []string{
	"order_uid", "customer_id", "status", "total_amount", "shipping_address", "date_created",
}

var itemColumns = []string{
	"item_uid", "order_uid", "product_id", "sku", "quantity", "unit_price", "subtotal",
}

type ordersRepo struct {
	base
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{base: newBase(db)}
}

// SaveOrderWithItems пишет заказ и его позиции. Атомарность обеспечивает
// транзакция из контекста (trm), репозиторий её не открывает.
func (r *ordersRepo) SaveOrderWithItems(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.OrderUID, o.CustomerID, string(o.Status), o.TotalAmount, nullString(o.ShippingAddress), o.DateCreated).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range o.Items {
		q = q.Values(it.ItemUID, o.OrderUID, it.ProductID, it.SKU, it.Quantity, it.UnitPrice, it.Subtotal)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) OrderByUID(ctx context.Context, orderUID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *ordersRepo) UpdateOrderStatus(ctx context.Context, orderUID string, status entities.Status) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *ordersRepo) ListOrders(ctx context.Context, page entities.PageParams) (entities.Page[entities.Order], error) {
	return r.listOrders(ctx, page, nil)
}

func (r *ordersRepo) OrdersByCustomer(ctx context.Context, customerID string, page entities.PageParams) (entities.Page[entities.Order], error) {
	return r.listOrders(ctx, page, sq.Eq{"customer_id": customerID})
}

func (r *ordersRepo) listOrders(ctx context.Context, page entities.PageParams, filter any) (entities.Page[entities.Order], error) {
	page = page.Normalize()
	empty := entities.Page[entities.Order]{Items: []entities.Order{}, Limit: page.Limit, Offset: page.Offset}

	countQ := r.qb.Select("COUNT(*)").From("orders")
	listQ := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("date_created DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))

	if filter != nil {
		countQ = countQ.Where(filter)
		listQ = listQ.Where(filter)
	}

	query, args := countQ.MustSql()
	var total int64
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return empty, fmt.Errorf("failed to count orders: %w", err)
	}

	query, args = listQ.MustSql()
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return empty, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		empty.Total = total
		return empty, nil
	}

	uids := make([]string, len(orders))
	for i, o := range orders {
		uids[i] = o.OrderUID
	}

	// Позиции для всей страницы одним запросом
	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_uid": uids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return empty, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(uids))
	for _, it := range items {
		itemsMap[it.OrderUID] = append(itemsMap[it.OrderUID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderUID]))
	}

	return entities.Page[entities.Order]{
		Items:  result,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}
