package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID string
	Email      string
	FirstName  string
	LastName   string
}

// Product описывает товар из каталога. Ядро меняет только StockQuantity,
// и делает это исключительно через inventory.Ledger.
type Product struct {
	ProductID     string
	SKU           string
	Name          string
	Price         decimal.Decimal
	StockQuantity int
	Active        bool
	CreatedAt     time.Time
}

type PageParams struct {
	Limit  int
	Offset int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

func (p PageParams) Normalize() PageParams {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

type Page[T any] struct {
	Items  []T
	Total  int64
	Limit  int
	Offset int
}
