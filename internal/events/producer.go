// Package events публикует события жизненного цикла заказа в Kafka.
// Публикация — best effort после коммита: потребители (нотификации,
// аналитика) переживут потерю события, а заказ — нет.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/erikm/ecommerce-orders/internal/config"
	"github.com/erikm/ecommerce-orders/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
	TypeOrderCancelled     = "order.cancelled"
)

type OrderItemEvent struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderEvent struct {
	EventID     string           `json:"event_id"`
	Type        string           `json:"type"`
	OrderUID    string           `json:"order_uid"`
	CustomerID  string           `json:"customer_id,omitempty"`
	Status      string           `json:"status"`
	OldStatus   string           `json:"old_status,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	Items       []OrderItemEvent `json:"items,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
}

type Producer struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewProducer(logger *slog.Logger, cfg config.Kafka) *Producer {
	return &Producer{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Producer) OrderCreated(ctx context.Context, order entities.Order) error {
	items := make([]OrderItemEvent, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, OrderItemEvent{
			ProductID: it.ProductID,
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}

	total := order.TotalAmount
	return p.publish(ctx, OrderEvent{
		EventID:     uuid.NewString(),
		Type:        TypeOrderCreated,
		OrderUID:    order.OrderUID,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		TotalAmount: &total,
		Items:       items,
		Timestamp:   time.Now().UTC(),
	})
}

func (p *Producer) OrderStatusChanged(ctx context.Context, orderUID string, old, new entities.Status) error {
	return p.publish(ctx, OrderEvent{
		EventID:   uuid.NewString(),
		Type:      TypeOrderStatusChanged,
		OrderUID:  orderUID,
		Status:    string(new),
		OldStatus: string(old),
		Timestamp: time.Now().UTC(),
	})
}

func (p *Producer) OrderCancelled(ctx context.Context, order entities.Order) error {
	return p.publish(ctx, OrderEvent{
		EventID:    uuid.NewString(),
		Type:       TypeOrderCancelled,
		OrderUID:   order.OrderUID,
		CustomerID: order.CustomerID,
		Status:     string(entities.StatusCancelled),
		Timestamp:  time.Now().UTC(),
	})
}

func (p *Producer) publish(ctx context.Context, event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderUID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("event published",
		slog.String("type", event.Type), slog.String("order_uid", event.OrderUID))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
