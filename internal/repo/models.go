package repo

import (
	"database/sql"
	"time"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderUID        string          `db:"order_uid"`
	CustomerID      string          `db:"customer_id"`
	Status          string          `db:"status"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	ShippingAddress sql.NullString  `db:"shipping_address"`
	DateCreated     time.Time       `db:"date_created"`
}

type OrderItem struct {
	ItemUID   string          `db:"item_uid"`
	OrderUID  string          `db:"order_uid"`
	ProductID string          `db:"product_id"`
	SKU       string          `db:"sku"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Subtotal  decimal.Decimal `db:"subtotal"`
}

type Customer struct {
	CustomerID string         `db:"customer_id"`
	Email      string         `db:"email"`
	FirstName  sql.NullString `db:"first_name"`
	LastName   sql.NullString `db:"last_name"`
}

type Product struct {
	ProductID     string          `db:"product_id"`
	SKU           string          `db:"sku"`
	Name          string          `db:"name"`
	Price         decimal.Decimal `db:"price"`
	StockQuantity int             `db:"stock_quantity"`
	IsActive      bool            `db:"is_active"`
	CreatedAt     time.Time       `db:"created_at"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ItemUID:   i.ItemUID,
		OrderUID:  i.OrderUID,
		ProductID: i.ProductID,
		SKU:       i.SKU,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		Subtotal:  i.Subtotal,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		OrderUID:        o.OrderUID,
		CustomerID:      o.CustomerID,
		Status:          entities.Status(o.Status),
		TotalAmount:     o.TotalAmount,
		ShippingAddress: nullStringToString(o.ShippingAddress),
		DateCreated:     o.DateCreated,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func CustomerToEntity(c Customer) entities.Customer {
	return entities.Customer{
		CustomerID: c.CustomerID,
		Email:      c.Email,
		FirstName:  nullStringToString(c.FirstName),
		LastName:   nullStringToString(c.LastName),
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ProductID:     p.ProductID,
		SKU:           p.SKU,
		Name:          p.Name,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Active:        p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
