package pricing_test

import (
	"testing"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/erikm/ecommerce-orders/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	testCases := []struct {
		name      string
		quantity  int
		unitPrice string
		want      string
		wantErr   error
	}{
		{
			name:      "simple multiplication",
			quantity:  3,
			unitPrice: "19.99",
			want:      "59.97",
		},
		{
			name:      "no binary float drift",
			quantity:  10,
			unitPrice: "0.1",
			want:      "1",
		},
		{
			name:      "single unit",
			quantity:  1,
			unitPrice: "1250.50",
			want:      "1250.50",
		},
		{
			name:      "zero quantity rejected",
			quantity:  0,
			unitPrice: "10.00",
			wantErr:   entities.ErrInvalidArgument,
		},
		{
			name:      "negative quantity rejected",
			quantity:  -2,
			unitPrice: "10.00",
			wantErr:   entities.ErrInvalidArgument,
		},
		{
			name:      "zero price rejected",
			quantity:  2,
			unitPrice: "0",
			wantErr:   entities.ErrInvalidArgument,
		},
		{
			name:      "negative price rejected",
			quantity:  2,
			unitPrice: "-5.00",
			wantErr:   entities.ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price := decimal.RequireFromString(tc.unitPrice)

			got, err := pricing.Subtotal(tc.quantity, price)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"want %s, got %s", tc.want, got)
		})
	}
}

func TestTotal(t *testing.T) {
	t.Run("empty is zero", func(t *testing.T) {
		assert.True(t, pricing.Total(nil).IsZero())
	})

	t.Run("sums exactly", func(t *testing.T) {
		subtotals := []decimal.Decimal{
			decimal.RequireFromString("0.1"),
			decimal.RequireFromString("0.2"),
			decimal.RequireFromString("0.3"),
		}
		assert.True(t, pricing.Total(subtotals).Equal(decimal.RequireFromString("0.6")))
	})

	t.Run("order independent", func(t *testing.T) {
		a := decimal.RequireFromString("19.99")
		b := decimal.RequireFromString("0.01")
		c := decimal.RequireFromString("1000000.55")

		forward := pricing.Total([]decimal.Decimal{a, b, c})
		backward := pricing.Total([]decimal.Decimal{c, b, a})

		assert.True(t, forward.Equal(backward))
	})
}
