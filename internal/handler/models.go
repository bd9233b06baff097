package handler

import (
	"time"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	CustomerEmail   string            `json:"customer_email" validate:"required,email"`
	ShippingAddress string            `json:"shipping_address,omitempty"`
	Items           []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderItem позиция создаваемого заказа
type CreateOrderItem struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// EditStatusRequest тело запроса на смену статуса
type EditStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// StatusResponse результат смены статуса
type StatusResponse struct {
	OrderUID string `json:"order_uid"`
	Status   string `json:"status"`
}

// Order представляет заказ
type Order struct {
	OrderUID        string          `json:"order_uid"`
	CustomerID      string          `json:"customer_id"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount" swaggertype:"string"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	DateCreated     time.Time       `json:"date_created"`
	Items           []Item          `json:"items"`
}

// Item позиция заказа
type Item struct {
	ItemUID   string          `json:"item_uid"`
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// OrdersPage страница заказов
type OrdersPage struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

func ItemEntityToJSON(i entities.OrderItem) Item {
	return Item{
		ItemUID:   i.ItemUID,
		ProductID: i.ProductID,
		SKU:       i.SKU,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		Subtotal:  i.Subtotal,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		OrderUID:        o.OrderUID,
		CustomerID:      o.CustomerID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		DateCreated:     o.DateCreated,
		Items:           items,
	}
}

func PageEntityToJSON(p entities.Page[entities.Order]) OrdersPage {
	orders := make([]Order, 0, len(p.Items))
	for _, o := range p.Items {
		orders = append(orders, OrderEntityToJSON(o))
	}

	return OrdersPage{
		Orders: orders,
		Total:  p.Total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
}
