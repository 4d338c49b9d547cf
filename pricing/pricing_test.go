package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-storefront/models"
)

func price(v int64) *int64 { return &v }

func TestCalculateDiscount(t *testing.T) {
	assert.Equal(t, 20, CalculateDiscount(100, price(80)))
	assert.Equal(t, 0, CalculateDiscount(100, price(100)))
	assert.Equal(t, 0, CalculateDiscount(100, nil))
	assert.Equal(t, 0, CalculateDiscount(100, price(120)))
	assert.Equal(t, 33, CalculateDiscount(300, price(200)))
	assert.Equal(t, 0, CalculateDiscount(0, price(0)))
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name string
		p    models.Product
		want int64
	}{
		{"no sale", models.Product{Price: 500}, 500},
		{"sale below price", models.Product{Price: 1000, SalePrice: price(800)}, 800},
		{"sale equal to price", models.Product{Price: 1000, SalePrice: price(1000)}, 1000},
		{"sale above price", models.Product{Price: 1000, SalePrice: price(1200)}, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectivePrice(tt.p))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$0", FormatPrice(0))
	assert.Equal(t, "$999", FormatPrice(999))
	assert.Equal(t, "$1.000", FormatPrice(1000))
	assert.Equal(t, "$2.890.000", FormatPrice(2890000))
	assert.Equal(t, "-$12.500", FormatPrice(-12500))
}

func TestSummarize(t *testing.T) {
	items := []models.CartItem{
		{Product: models.Product{ID: "a", Price: 1000, SalePrice: price(800)}, Quantity: 2},
		{Product: models.Product{ID: "b", Price: 500}, Quantity: 1},
	}
	s := Summarize(items)
	assert.Equal(t, 3, s.Items)
	assert.Equal(t, int64(2100), s.Subtotal)
	assert.Equal(t, int64(399), s.Tax)
	assert.Equal(t, int64(2499), s.Total)
}
