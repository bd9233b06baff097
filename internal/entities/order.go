package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderUID        string
	CustomerID      string
	Status          Status
	TotalAmount     decimal.Decimal
	ShippingAddress string
	DateCreated     time.Time

	// заказ владеет своими позициями, отдельно они не живут
	Items []OrderItem
}

type OrderItem struct {
	ItemUID   string
	OrderUID  string
	ProductID string
	SKU       string
	Quantity  int
	// цена фиксируется на момент создания заказа
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
