package models

// Payment statuses reported by the gateway
const (
	PaymentApproved  = "approved"
	PaymentPending   = "pending"
	PaymentRejected  = "rejected"
	PaymentCancelled = "cancelled"
)

// PaymentLinkRequest describes the payment link asked for an order
type PaymentLinkRequest struct {
	Amount        int64  `json:"amount"`
	OrderID       string `json:"order_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Description   string `json:"description"`
	ReturnURL     string `json:"return_url"`
}

// PaymentLink is the gateway answer for a link request
type PaymentLink struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"payment_url,omitempty"`
	PaymentID  string `json:"payment_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PaymentStatus is the result of verifying a payment
type PaymentStatus struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Amount  int64  `json:"amount"`
}
