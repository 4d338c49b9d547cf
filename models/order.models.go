package models

import "time"

// Order statuses
const (
	OrderPending    = "pending"
	OrderPaid       = "paid"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPaid, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order represents a checkout placed from a cart
type Order struct {
	ID            string        `json:"id"`
	OrderNumber   string        `json:"order_number"`
	Items         []CartItem    `json:"items"`
	Customer      CustomerInfo  `json:"customer"`
	Shipping      *ShippingInfo `json:"shipping,omitempty"`
	Subtotal      int64         `json:"subtotal"`
	Discount      int64         `json:"discount"`
	Tax           int64         `json:"tax"`
	Total         int64         `json:"total"`
	Status        string        `json:"status"`
	PaymentID     string        `json:"payment_id,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	PaymentURL    string        `json:"payment_url,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
