package models

// CartItem is a product snapshot taken when it was added, plus the quantity
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
