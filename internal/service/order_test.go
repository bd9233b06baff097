package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/erikm/ecommerce-orders/internal/inventory"
	"github.com/erikm/ecommerce-orders/internal/service"
	mocks "github.com/erikm/ecommerce-orders/internal/service/mocks"
	txMocks "github.com/erikm/ecommerce-orders/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderSvc interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	EditOrderStatus(ctx context.Context, orderUID, statusName string) (entities.Status, error)
	CancelOrder(ctx context.Context, orderUID string) (entities.Order, error)
	OrderByUID(ctx context.Context, orderUID string) (entities.Order, error)
	ListOrders(ctx context.Context, page entities.PageParams) (entities.Page[entities.Order], error)
	OrdersByCustomer(ctx context.Context, customerID string, page entities.PageParams) (entities.Page[entities.Order], error)
}

type serviceMocks struct {
	orders    *mocks.MockOrderRepo
	customers *mocks.MockCustomerRepo
	products  *mocks.MockProductRepo
	stock     *mocks.MockInventory
	events    *mocks.MockEventPublisher
	cache     *mocks.MockCache
}

func newTestService(t *testing.T) (*serviceMocks, orderSvc) {
	t.Helper()

	m := &serviceMocks{
		orders:    mocks.NewMockOrderRepo(t),
		customers: mocks.NewMockCustomerRepo(t),
		products:  mocks.NewMockProductRepo(t),
		stock:     mocks.NewMockInventory(t),
		events:    mocks.NewMockEventPublisher(t),
		cache:     mocks.NewMockCache(t),
	}

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, tx, m.orders, m.customers, m.products, m.stock, m.events, m.cache)
	return m, svc
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(m *serviceMocks)

	customer := entities.Customer{CustomerID: "cust-1", Email: "jane@example.com"}
	widget := entities.Product{ProductID: "prod-1", SKU: "WIDGET", Price: money("10.00"), StockQuantity: 5, Active: true}
	gadget := entities.Product{ProductID: "prod-2", SKU: "GADGET", Price: money("5.50"), StockQuantity: 1, Active: true}

	input := service.CreateOrderInput{
		CustomerEmail: "jane@example.com",
		Items: []service.CreateOrderItem{
			{SKU: "WIDGET", Quantity: 3},
			{SKU: "GADGET", Quantity: 1},
		},
	}

	testCases := []struct {
		name         string
		input        service.CreateOrderInput
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.Status
		wantTotal    decimal.Decimal
	}{
		{
			name:  "confirmed when stock is sufficient",
			input: input,
			mockBehavior: func(m *serviceMocks) {
				m.customers.EXPECT().CustomerByEmail(mock.Anything, "jane@example.com").Return(customer, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "WIDGET").Return(widget, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "GADGET").Return(gadget, nil).Once()
				m.stock.EXPECT().TryReserve(mock.Anything, "prod-1", 3).
					Return(inventory.Reservation{Sufficient: true, Available: 5}, nil).Once()
				m.stock.EXPECT().TryReserve(mock.Anything, "prod-2", 1).
					Return(inventory.Reservation{Sufficient: true, Available: 1}, nil).Once()
				m.stock.EXPECT().Decrement(mock.Anything, "prod-1", 3).Return(2, nil).Once()
				m.stock.EXPECT().Decrement(mock.Anything, "prod-2", 1).Return(0, nil).Once()
				m.orders.EXPECT().SaveOrderWithItems(mock.Anything, mock.Anything).Return(nil).Once()
				m.events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.StatusConfirmed,
			wantTotal:  money("35.50"),
		},
		{
			name:  "pending when any item is short",
			input: input,
			mockBehavior: func(m *serviceMocks) {
				m.customers.EXPECT().CustomerByEmail(mock.Anything, "jane@example.com").Return(customer, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "WIDGET").Return(widget, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "GADGET").Return(gadget, nil).Once()
				m.stock.EXPECT().TryReserve(mock.Anything, "prod-1", 3).
					Return(inventory.Reservation{Sufficient: true, Available: 5}, nil).Once()
				// второй позиции не хватает, ничего не списываем
				m.stock.EXPECT().TryReserve(mock.Anything, "prod-2", 1).
					Return(inventory.Reservation{Sufficient: false, Available: 0}, nil).Once()
				m.orders.EXPECT().SaveOrderWithItems(mock.Anything, mock.Anything).Return(nil).Once()
				m.events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.StatusPending,
			wantTotal:  money("35.50"),
		},
		{
			name: "empty order rejected",
			input: service.CreateOrderInput{
				CustomerEmail: "jane@example.com",
			},
			mockBehavior: func(m *serviceMocks) {},
			wantErr:      entities.ErrEmptyOrder,
		},
		{
			name:  "customer not found",
			input: input,
			mockBehavior: func(m *serviceMocks) {
				m.customers.EXPECT().CustomerByEmail(mock.Anything, "jane@example.com").
					Return(entities.Customer{}, entities.ErrCustomerNotFound).Once()
			},
			wantErr: entities.ErrCustomerNotFound,
		},
		{
			name:  "product not found",
			input: input,
			mockBehavior: func(m *serviceMocks) {
				m.customers.EXPECT().CustomerByEmail(mock.Anything, "jane@example.com").Return(customer, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "WIDGET").Return(widget, nil).Maybe()
				m.products.EXPECT().ProductBySKU(mock.Anything, "GADGET").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "non-positive quantity rejected",
			input: service.CreateOrderInput{
				CustomerEmail: "jane@example.com",
				Items:         []service.CreateOrderItem{{SKU: "WIDGET", Quantity: 0}},
			},
			mockBehavior: func(m *serviceMocks) {
				m.customers.EXPECT().CustomerByEmail(mock.Anything, "jane@example.com").Return(customer, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "WIDGET").Return(widget, nil).Once()
			},
			wantErr: entities.ErrInvalidArgument,
		},
		{
			name:  "lost race rolls back decrements",
			input: input,
			mockBehavior: func(m *serviceMocks) {
				m.customers.EXPECT().CustomerByEmail(mock.Anything, "jane@example.com").Return(customer, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "WIDGET").Return(widget, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "GADGET").Return(gadget, nil).Once()
				m.stock.EXPECT().TryReserve(mock.Anything, "prod-1", 3).
					Return(inventory.Reservation{Sufficient: true, Available: 5}, nil).Once()
				m.stock.EXPECT().TryReserve(mock.Anything, "prod-2", 1).
					Return(inventory.Reservation{Sufficient: true, Available: 1}, nil).Once()
				m.stock.EXPECT().Decrement(mock.Anything, "prod-1", 3).Return(2, nil).Once()
				// вторая позиция проиграла гонку, первая должна вернуться на склад
				m.stock.EXPECT().Decrement(mock.Anything, "prod-2", 1).
					Return(0, entities.ErrConcurrencyConflict).Once()
				m.stock.EXPECT().Restore(mock.Anything, "prod-1", 3).Return(5, nil).Once()
			},
			wantErr: entities.ErrConcurrencyConflict,
		},
		{
			name:  "publish failure does not fail the order",
			input: input,
			mockBehavior: func(m *serviceMocks) {
				m.customers.EXPECT().CustomerByEmail(mock.Anything, "jane@example.com").Return(customer, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "WIDGET").Return(widget, nil).Once()
				m.products.EXPECT().ProductBySKU(mock.Anything, "GADGET").Return(gadget, nil).Once()
				m.stock.EXPECT().TryReserve(mock.Anything, mock.Anything, mock.Anything).
					Return(inventory.Reservation{Sufficient: true, Available: 10}, nil).Twice()
				m.stock.EXPECT().Decrement(mock.Anything, mock.Anything, mock.Anything).Return(0, nil).Twice()
				m.orders.EXPECT().SaveOrderWithItems(mock.Anything, mock.Anything).Return(nil).Once()
				m.events.EXPECT().OrderCreated(mock.Anything, mock.Anything).
					Return(errors.New("kafka down")).Once()
			},
			wantStatus: entities.StatusConfirmed,
			wantTotal:  money("35.50"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newTestService(t)
			tc.mockBehavior(m)

			order, err := svc.CreateOrder(context.Background(), tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, order.OrderUID)
			assert.Equal(t, "cust-1", order.CustomerID)
			assert.Equal(t, tc.wantStatus, order.Status)
			assert.True(t, tc.wantTotal.Equal(order.TotalAmount),
				"want total %s, got %s", tc.wantTotal, order.TotalAmount)
			assert.Len(t, order.Items, len(tc.input.Items))
			for _, item := range order.Items {
				assert.NotEmpty(t, item.ItemUID)
				assert.Equal(t, order.OrderUID, item.OrderUID)
			}
		})
	}
}

func TestOrderService_CreateOrder_PriceSnapshot(t *testing.T) {
	m, svc := newTestService(t)

	customer := entities.Customer{CustomerID: "cust-1", Email: "jane@example.com"}
	product := entities.Product{ProductID: "prod-1", SKU: "WIDGET", Price: money("0.10"), Active: true}

	m.customers.EXPECT().CustomerByEmail(mock.Anything, "jane@example.com").Return(customer, nil).Once()
	m.products.EXPECT().ProductBySKU(mock.Anything, "WIDGET").Return(product, nil).Once()
	m.stock.EXPECT().TryReserve(mock.Anything, "prod-1", 10).
		Return(inventory.Reservation{Sufficient: true, Available: 100}, nil).Once()
	m.stock.EXPECT().Decrement(mock.Anything, "prod-1", 10).Return(90, nil).Once()
	m.orders.EXPECT().SaveOrderWithItems(mock.Anything, mock.Anything).Return(nil).Once()
	m.events.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()

	order, err := svc.CreateOrder(context.Background(), service.CreateOrderInput{
		CustomerEmail: "jane@example.com",
		Items:         []service.CreateOrderItem{{SKU: "WIDGET", Quantity: 10}},
	})
	require.NoError(t, err)

	// 10 x 0.10 это ровно 1.00, а не 0.9999999
	assert.True(t, money("1.00").Equal(order.TotalAmount), "got %s", order.TotalAmount)
	assert.True(t, money("0.10").Equal(order.Items[0].UnitPrice))
	assert.True(t, money("1.00").Equal(order.Items[0].Subtotal))
}

func TestOrderService_CancelOrder(t *testing.T) {
	type MockBehavior func(m *serviceMocks)

	confirmedOrder := entities.Order{
		OrderUID:   "order-1",
		CustomerID: "cust-1",
		Status:     entities.StatusConfirmed,
		Items: []entities.OrderItem{
			{ItemUID: "item-1", OrderUID: "order-1", ProductID: "prod-1", SKU: "WIDGET", Quantity: 3},
			{ItemUID: "item-2", OrderUID: "order-1", ProductID: "prod-2", SKU: "GADGET", Quantity: 1},
		},
	}
	pendingOrder := confirmedOrder
	pendingOrder.Status = entities.StatusPending
	cancelledOrder := confirmedOrder
	cancelledOrder.Status = entities.StatusCancelled
	deliveredOrder := confirmedOrder
	deliveredOrder.Status = entities.StatusDelivered

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "confirmed order restocks every item",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").Return(confirmedOrder, nil).Once()
				m.stock.EXPECT().Restore(mock.Anything, "prod-1", 3).Return(5, nil).Once()
				m.stock.EXPECT().Restore(mock.Anything, "prod-2", 1).Return(1, nil).Once()
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.StatusCancelled).Return(nil).Once()
				m.cache.EXPECT().Delete("order-1").Return().Once()
				m.events.EXPECT().OrderCancelled(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "pending order never touched stock",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").Return(pendingOrder, nil).Once()
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.StatusCancelled).Return(nil).Once()
				m.cache.EXPECT().Delete("order-1").Return().Once()
				m.events.EXPECT().OrderCancelled(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "double cancel is rejected",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").Return(cancelledOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name: "delivered order cannot be cancelled",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").Return(deliveredOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name: "order not found",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "restore failure aborts cancellation",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").Return(confirmedOrder, nil).Once()
				m.stock.EXPECT().Restore(mock.Anything, "prod-1", 3).
					Return(0, entities.ErrConcurrencyConflict).Once()
			},
			wantErr: entities.ErrConcurrencyConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newTestService(t)
			tc.mockBehavior(m)

			order, err := svc.CancelOrder(context.Background(), "order-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, order.Status)
		})
	}
}

func TestOrderService_EditOrderStatus(t *testing.T) {
	type MockBehavior func(m *serviceMocks)

	createdOrder := entities.Order{OrderUID: "order-1", Status: entities.StatusCreated}
	deliveredOrder := entities.Order{OrderUID: "order-1", Status: entities.StatusDelivered}

	testCases := []struct {
		name         string
		statusName   string
		mockBehavior MockBehavior
		want         entities.Status
		wantErr      error
	}{
		{
			name:       "success",
			statusName: "confirmed",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").Return(createdOrder, nil).Once()
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.StatusConfirmed).Return(nil).Once()
				m.events.EXPECT().OrderStatusChanged(mock.Anything, "order-1", entities.StatusCreated, entities.StatusConfirmed).
					Return(nil).Once()
				m.cache.EXPECT().Delete("order-1").Return().Once()
			},
			want: entities.StatusConfirmed,
		},
		{
			name:       "unknown status",
			statusName: "SHIPPED",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").Return(createdOrder, nil).Once()
			},
			wantErr: entities.ErrUnknownStatus,
		},
		{
			name:       "terminal source is frozen",
			statusName: "CONFIRMED",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").Return(deliveredOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:       "order not found",
			statusName: "CONFIRMED",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newTestService(t)
			tc.mockBehavior(m)

			got, err := svc.EditOrderStatus(context.Background(), "order-1", tc.statusName)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_OrderByUID(t *testing.T) {
	type MockBehavior func(m *serviceMocks)

	validOrder := entities.Order{
		OrderUID:    "order-1",
		Status:      entities.StatusConfirmed,
		DateCreated: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderUID     string
		mockBehavior MockBehavior
		want         entities.Order
		wantErr      bool
	}{
		{
			name:     "success from cache",
			orderUID: "order-1",
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order-1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:     "cache hit but unmarshal fails",
			orderUID: "order-1",
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order-1").Return([]byte("broken"), true).Once()
			},
			wantErr: true,
		},
		{
			name:     "success from repo and set to cache",
			orderUID: "order-1",
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order-1").Return(nil, false).Once()
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:     "not found is not retried",
			orderUID: "not-exist",
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("not-exist").Return(nil, false).Once()
				m.orders.EXPECT().OrderByUID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: true,
		},
		{
			name:     "second attempt from repo",
			orderUID: "order-1",
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order-1").Return(nil, false).Once()
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").
					Return(entities.Order{}, errors.New("some error")).Once()
				m.orders.EXPECT().OrderByUID(mock.Anything, "order-1").
					Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newTestService(t)
			tc.mockBehavior(m)

			got, err := svc.OrderByUID(context.Background(), tc.orderUID)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_OrdersByCustomer(t *testing.T) {
	page := entities.Page[entities.Order]{
		Items:  []entities.Order{{OrderUID: "order-1", CustomerID: "cust-1"}},
		Total:  1,
		Limit:  entities.DefaultPageLimit,
		Offset: 0,
	}

	t.Run("success", func(t *testing.T) {
		m, svc := newTestService(t)

		m.customers.EXPECT().CustomerByID(mock.Anything, "cust-1").
			Return(entities.Customer{CustomerID: "cust-1"}, nil).Once()
		m.orders.EXPECT().OrdersByCustomer(mock.Anything, "cust-1", entities.PageParams{Limit: entities.DefaultPageLimit}).
			Return(page, nil).Once()

		got, err := svc.OrdersByCustomer(context.Background(), "cust-1", entities.PageParams{Limit: entities.DefaultPageLimit})
		require.NoError(t, err)
		assert.Equal(t, page, got)
	})

	t.Run("customer not found", func(t *testing.T) {
		m, svc := newTestService(t)

		m.customers.EXPECT().CustomerByID(mock.Anything, "ghost").
			Return(entities.Customer{}, entities.ErrCustomerNotFound).Once()

		_, err := svc.OrdersByCustomer(context.Background(), "ghost", entities.PageParams{})
		assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	m, svc := newTestService(t)

	page := entities.Page[entities.Order]{
		Items: []entities.Order{{OrderUID: "order-1"}, {OrderUID: "order-2"}},
		Total: 2,
		Limit: 50,
	}
	m.orders.EXPECT().ListOrders(mock.Anything, entities.PageParams{Limit: 50}).Return(page, nil).Once()

	got, err := svc.ListOrders(context.Background(), entities.PageParams{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, page, got)
}
