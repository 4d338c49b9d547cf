// Package payment generates payment links for placed orders. Only the demo flow is
// reachable: links point back to the storefront result page as already paid.
package payment

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"go-storefront/models"
	"go-storefront/utils"
)

// DemoSeller is the seller id of the sandbox account
const DemoSeller = "DEMO_SELLER"

// Gateway is the Getnet payment link client
type Gateway struct {
	cfg utils.PaymentConfig
	now func() time.Time
}

// NewGateway creates a gateway for the given seller configuration
func NewGateway(cfg utils.PaymentConfig) *Gateway {
	return &Gateway{cfg: cfg, now: time.Now}
}

// Demo reports whether the gateway runs against the sandbox seller
func (g *Gateway) Demo() bool {
	return g.cfg.SellerID == "" || g.cfg.SellerID == DemoSeller
}

// GenerateLink returns the URL the customer pays at
func (g *Gateway) GenerateLink(ctx context.Context, req models.PaymentLinkRequest) (models.PaymentLink, error) {
	if err := ctx.Err(); err != nil {
		return models.PaymentLink{Success: false, Error: err.Error()}, err
	}
	if req.OrderID == "" {
		return models.PaymentLink{Success: false, Error: "order id is required"}, fmt.Errorf("payment link: missing order id")
	}
	if !g.Demo() {
		// TODO: call the Getnet payment-link API once production credentials are issued
		zap.S().Warnf("Getnet seller %s configured but live links are not enabled, using demo flow", g.cfg.SellerID)
	}

	q := url.Values{}
	q.Set("order_id", req.OrderID)
	q.Set("status", "success")
	return models.PaymentLink{
		Success:    true,
		PaymentURL: "/pago/resultado?" + q.Encode(),
		PaymentID:  fmt.Sprintf("PAY-%d", g.now().UnixMilli()),
	}, nil
}

// Verify reports the status of a payment. Demo payments are always approved.
func (g *Gateway) Verify(ctx context.Context, paymentID string) (models.PaymentStatus, error) {
	if err := ctx.Err(); err != nil {
		return models.PaymentStatus{}, err
	}
	if paymentID == "" {
		return models.PaymentStatus{Success: false, Status: models.PaymentRejected}, nil
	}
	return models.PaymentStatus{Success: true, Status: models.PaymentApproved}, nil
}
