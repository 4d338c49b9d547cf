package models

// CustomerInfo holds the buyer data captured at checkout
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	RUT     string `json:"rut,omitempty"` // cleaned, upper case
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// ShippingInfo is the optional delivery address of an order
type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Comuna  string `json:"comuna"`
	ZipCode string `json:"zip_code"`
	Notes   string `json:"notes,omitempty"`
}

// Admin is the authenticated panel operator
type Admin struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
