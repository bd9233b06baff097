package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/erikm/ecommerce-orders/internal/inventory"
	"github.com/erikm/ecommerce-orders/internal/pricing"
	"github.com/erikm/ecommerce-orders/pkg/trm"
	"github.com/erikm/ecommerce-orders/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	// Вызывается внутри транзакции trm, сама транзакцию не открывает
	SaveOrderWithItems(ctx context.Context, order entities.Order) error
	OrderByUID(ctx context.Context, orderUID string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderUID string, status entities.Status) error
	ListOrders(ctx context.Context, page entities.PageParams) (entities.Page[entities.Order], error)
	OrdersByCustomer(ctx context.Context, customerID string, page entities.PageParams) (entities.Page[entities.Order], error)
}

type CustomerRepo interface {
	CustomerByEmail(ctx context.Context, email string) (entities.Customer, error)
	CustomerByID(ctx context.Context, customerID string) (entities.Customer, error)
}

type ProductRepo interface {
	ProductBySKU(ctx context.Context, sku string) (entities.Product, error)
}

type Inventory interface {
	TryReserve(ctx context.Context, productID string, requested int) (inventory.Reservation, error)
	Decrement(ctx context.Context, productID string, amount int) (int, error)
	Restore(ctx context.Context, productID string, amount int) (int, error)
}

type EventPublisher interface {
	OrderCreated(ctx context.Context, order entities.Order) error
	OrderStatusChanged(ctx context.Context, orderUID string, old, new entities.Status) error
	OrderCancelled(ctx context.Context, order entities.Order) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type CreateOrderItem struct {
	SKU      string
	Quantity int
}

type CreateOrderInput struct {
	CustomerEmail   string
	ShippingAddress string
	Items           []CreateOrderItem
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	customers CustomerRepo
	products  ProductRepo
	stock     Inventory
	events    EventPublisher
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	customers CustomerRepo,
	products ProductRepo,
	stock Inventory,
	events EventPublisher,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		customers: customers,
		products:  products,
		stock:     stock,
		events:    events,
		cache:     cache,
	}
}

// CreateOrder собирает заказ: резолвит клиента и товары, фиксирует цены,
// считает итог и решает судьбу заказа по остаткам. Политика "всё или ничего":
// не хватило хотя бы одной позиции — заказ становится PENDING и склад не
// трогаем вовсе.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if len(in.Items) == 0 {
		return entities.Order{}, entities.ErrEmptyOrder
	}

	customer, err := s.customers.CustomerByEmail(ctx, in.CustomerEmail)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve customer: %w", err)
	}

	products, err := s.resolveProducts(ctx, in.Items)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		OrderUID:        uuid.NewString(),
		CustomerID:      customer.CustomerID,
		Status:          entities.StatusCreated,
		ShippingAddress: in.ShippingAddress,
		DateCreated:     time.Now().UTC(),
		Items:           make([]entities.OrderItem, 0, len(in.Items)),
	}

	subtotals := make([]decimal.Decimal, 0, len(in.Items))
	for i, it := range in.Items {
		// цена снимается с товара сейчас и больше не меняется
		subtotal, err := pricing.Subtotal(it.Quantity, products[i].Price)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to price item %s: %w", it.SKU, err)
		}

		order.Items = append(order.Items, entities.OrderItem{
			ItemUID:   uuid.NewString(),
			OrderUID:  order.OrderUID,
			ProductID: products[i].ProductID,
			SKU:       products[i].SKU,
			Quantity:  it.Quantity,
			UnitPrice: products[i].Price,
			Subtotal:  subtotal,
		})
		subtotals = append(subtotals, subtotal)
	}
	order.TotalAmount = pricing.Total(subtotals)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		sufficient := true
		for _, item := range order.Items {
			res, err := s.stock.TryReserve(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("failed to check stock of %s: %w", item.SKU, err)
			}
			if !res.Sufficient {
				s.logger.Debug("insufficient stock",
					slog.String("order_uid", order.OrderUID),
					slog.String("sku", item.SKU),
					slog.Int("requested", item.Quantity),
					slog.Int("available", res.Available))
				sufficient = false
				break
			}
		}

		order.Status = entities.InitialStatus(sufficient)

		if sufficient {
			if err := s.decrementAll(ctx, order.Items); err != nil {
				return err
			}
		}

		return s.orders.SaveOrderWithItems(ctx, order)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order created",
		slog.String("order_uid", order.OrderUID),
		slog.String("status", string(order.Status)))

	if err := s.events.OrderCreated(ctx, order); err != nil {
		// событие — best effort, заказ уже сохранён
		s.logger.Error("failed to publish order created event",
			slog.String("order_uid", order.OrderUID), slog.Any("error", err))
	}

	return order, nil
}

func (s *orderService) resolveProducts(ctx context.Context, items []CreateOrderItem) ([]entities.Product, error) {
	products := make([]entities.Product, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			product, err := s.products.ProductBySKU(gctx, it.SKU)
			if err != nil {
				return fmt.Errorf("failed to resolve product %s: %w", it.SKU, err)
			}
			products[i] = product
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return products, nil
}

// decrementAll списывает склад по всем позициям. Если какая-то позиция
// проиграла гонку после проверки, уже списанное возвращаем и валим всю
// операцию: частично укомплектованный заказ никому не нужен.
func (s *orderService) decrementAll(ctx context.Context, items []entities.OrderItem) error {
	decremented := make([]entities.OrderItem, 0, len(items))

	for _, item := range items {
		if _, err := s.stock.Decrement(ctx, item.ProductID, item.Quantity); err != nil {
			s.rollbackDecrements(ctx, decremented)
			return fmt.Errorf("failed to decrement stock of %s: %w", item.SKU, err)
		}
		decremented = append(decremented, item)
	}
	return nil
}

func (s *orderService) rollbackDecrements(ctx context.Context, items []entities.OrderItem) {
	for _, item := range items {
		if _, err := s.stock.Restore(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error("failed to roll back stock decrement",
				slog.String("sku", item.SKU), slog.Any("error", err))
		}
	}
}

// EditOrderStatus — административная смена статуса. Склад не трогает.
func (s *orderService) EditOrderStatus(ctx context.Context, orderUID, statusName string) (entities.Status, error) {
	var newStatus entities.Status

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.OrderByUID(ctx, orderUID)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}

		newStatus, err = order.Status.EditTo(statusName)
		if err != nil {
			return err
		}

		if err := s.orders.UpdateOrderStatus(ctx, orderUID, newStatus); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		if err := s.events.OrderStatusChanged(ctx, orderUID, order.Status, newStatus); err != nil {
			s.logger.Error("failed to publish status changed event",
				slog.String("order_uid", orderUID), slog.Any("error", err))
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.cache.Delete(orderUID)
	s.logger.Info("order status changed",
		slog.String("order_uid", orderUID), slog.String("status", string(newStatus)))
	return newStatus, nil
}

// CancelOrder отменяет заказ. CREATED и CONFIRMED возвращают товар на склад,
// PENDING ничего не списывал — возвращать нечего. Терминальные статусы
// отмену запрещают, в том числе повторную.
func (s *orderService) CancelOrder(ctx context.Context, orderUID string) (entities.Order, error) {
	var order entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.OrderByUID(ctx, orderUID)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}

		if !order.Status.CanCancel() {
			return fmt.Errorf("%w: cannot cancel order in status %s", entities.ErrInvalidTransition, order.Status)
		}

		if order.Status.RestocksOnCancel() {
			for _, item := range order.Items {
				if _, err := s.stock.Restore(ctx, item.ProductID, item.Quantity); err != nil {
					return fmt.Errorf("failed to restore stock of %s: %w", item.SKU, err)
				}
			}
		}

		order.Status = entities.StatusCancelled
		if err := s.orders.UpdateOrderStatus(ctx, orderUID, entities.StatusCancelled); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderUID)
	s.logger.Info("order cancelled", slog.String("order_uid", orderUID))

	if err := s.events.OrderCancelled(ctx, order); err != nil {
		s.logger.Error("failed to publish order cancelled event",
			slog.String("order_uid", orderUID), slog.Any("error", err))
	}

	return order, nil
}

// OrderByUID возвращает заказ, сначала заглядывая в кэш.
func (s *orderService) OrderByUID(ctx context.Context, orderUID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderUID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order",
				slog.String("order_uid", orderUID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.OrderByUID(ctx, orderUID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order",
			slog.String("order_uid", orderUID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderUID, data)
	return order, nil
}

// OrdersByCustomer сначала проверяет, что клиент существует.
func (s *orderService) OrdersByCustomer(ctx context.Context, customerID string, page entities.PageParams) (entities.Page[entities.Order], error) {
	if _, err := s.customers.CustomerByID(ctx, customerID); err != nil {
		return entities.Page[entities.Order]{}, fmt.Errorf("failed to resolve customer: %w", err)
	}
	return s.orders.OrdersByCustomer(ctx, customerID, page)
}

func (s *orderService) ListOrders(ctx context.Context, page entities.PageParams) (entities.Page[entities.Order], error) {
	return s.orders.ListOrders(ctx, page)
}
