// Package pricing holds the price arithmetic shared by the cart, checkout and catalog views.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"go-storefront/models"
)

// TaxRate is the flat IVA applied on top of the cart subtotal at checkout
const TaxRate = 0.19

// EffectivePrice returns the sale price when it undercuts the base price
func EffectivePrice(p models.Product) int64 {
	if p.SalePrice != nil && *p.SalePrice < p.Price {
		return *p.SalePrice
	}
	return p.Price
}

// CalculateDiscount returns the rounded discount percentage of salePrice over price.
func CalculateDiscount(price int64, salePrice *int64) int {
	if salePrice == nil || *salePrice >= price || price <= 0 {
		return 0
	}
	return int(math.Round(float64(price-*salePrice) / float64(price) * 100))
}

// FormatPrice formats an amount in CLP the way es-CL does: "$2.890.000".
func FormatPrice(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 2)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Tax returns the rounded IVA for a subtotal
func Tax(subtotal int64) int64 {
	return int64(math.Round(float64(subtotal) * TaxRate))
}

// Summary is the price breakdown shown on the cart and checkout pages
type Summary struct {
	Items    int   `json:"items"`
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"` // coupon discount, always 0 until coupons exist
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// LineTotal is the effective price of a line times its quantity
func LineTotal(item models.CartItem) int64 {
	return EffectivePrice(item.Product) * int64(item.Quantity)
}

// Summarize computes the breakdown of a list of cart lines.
func Summarize(items []models.CartItem) Summary {
	var s Summary
	for _, item := range items {
		s.Items += item.Quantity
		s.Subtotal += LineTotal(item)
	}
	s.Tax = Tax(s.Subtotal)
	s.Total = s.Subtotal - s.Discount + s.Tax
	return s
}
