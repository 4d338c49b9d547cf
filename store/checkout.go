package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-storefront/models"
	"go-storefront/pricing"
	"go-storefront/utils"
)

// PaymentGateway creates payment links and verifies payments
type PaymentGateway interface {
	GenerateLink(ctx context.Context, req models.PaymentLinkRequest) (models.PaymentLink, error)
	Verify(ctx context.Context, paymentID string) (models.PaymentStatus, error)
}

// OrderNotifier tells the customer an order was placed
type OrderNotifier interface {
	SendOrderConfirmationEmail(order models.Order) error
}

// Checkout turns a cart into an order
type Checkout struct {
	Orders   *OrderStore
	Payments PaymentGateway
	Notifier OrderNotifier
	// Delay is the artificial processing wait before an order is created
	Delay time.Duration
}

// CheckoutRequest is the checkout form
type CheckoutRequest struct {
	Customer      models.CustomerInfo  `json:"customer"`
	Shipping      *models.ShippingInfo `json:"shipping,omitempty"`
	PaymentMethod string               `json:"payment_method"`
}

var errAlreadySettled = errors.New("order already settled")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateCustomer(c *models.CustomerInfo) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" || c.Email == "" || c.Phone == "" {
		return required("customer", "Name, email and phone are required")
	}
	if !emailPattern.MatchString(c.Email) {
		return required("email", "Invalid email")
	}
	if c.RUT != "" {
		if !utils.ValidateRUT(c.RUT) {
			return required("rut", "Invalid RUT")
		}
		c.RUT = strings.ToUpper(utils.CleanRUT(c.RUT))
	}
	return nil
}

// PlaceOrder validates the form, stores a pending order, requests a payment link and
// takes the ordered lines out of the cart. The confirmation email is sent in the background.
func (co *Checkout) PlaceOrder(ctx context.Context, cart *CartStore, req CheckoutRequest) (models.Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if err := validateCustomer(&req.Customer); err != nil {
		return models.Order{}, err
	}

	if co.Delay > 0 {
		select {
		case <-time.After(co.Delay):
		case <-ctx.Done():
			return models.Order{}, ctx.Err()
		}
	}

	summary := pricing.Summarize(items)
	method := req.PaymentMethod
	if method == "" {
		method = "getnet"
	}
	order, err := co.Orders.Add(ctx, models.Order{
		OrderNumber:   utils.NewOrderNumber(),
		Items:         items,
		Customer:      req.Customer,
		Shipping:      req.Shipping,
		Subtotal:      summary.Subtotal,
		Discount:      summary.Discount,
		Tax:           summary.Tax,
		Total:         summary.Total,
		Status:        models.OrderPending,
		PaymentMethod: method,
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("saving order: %w", err)
	}

	link, err := co.Payments.GenerateLink(ctx, models.PaymentLinkRequest{
		Amount:        order.Total,
		OrderID:       order.ID,
		CustomerEmail: order.Customer.Email,
		CustomerName:  order.Customer.Name,
		CustomerPhone: order.Customer.Phone,
		Description:   "Pedido " + order.OrderNumber,
	})
	if err != nil {
		return order, fmt.Errorf("payment link for %s: %w", order.ID, err)
	}
	if !link.Success {
		return order, fmt.Errorf("payment link for %s: %s", order.ID, link.Error)
	}

	order, _, err = co.Orders.Update(ctx, order.ID, func(o *models.Order) error {
		o.PaymentID = link.PaymentID
		o.PaymentURL = link.PaymentURL
		return nil
	})
	if err != nil {
		return order, fmt.Errorf("saving payment of %s: %w", order.ID, err)
	}

	if err := cart.RemoveOrdered(ctx, items); err != nil {
		return order, fmt.Errorf("clearing cart: %w", err)
	}

	if co.Notifier != nil {
		go func(o models.Order) {
			if err := co.Notifier.SendOrderConfirmationEmail(o); err != nil {
				zap.S().Errorf("Failed to send email to %s: %v", o.Customer.Email, err)
			}
		}(order)
	}

	zap.S().Infow("Order placed", "order", order.ID, "number", order.OrderNumber, "total", order.Total)
	return order, nil
}

// ConfirmPayment settles a pending order after the payment page redirects back.
// A "success" status is verified with the gateway; anything else cancels the order.
// Orders that are no longer pending are returned unchanged.
func (co *Checkout) ConfirmPayment(ctx context.Context, orderID, status string) (models.Order, error) {
	order, ok, err := co.Orders.Get(ctx, orderID)
	if err != nil {
		return order, err
	}
	if !ok {
		return order, ErrNotFound
	}
	if order.Status != models.OrderPending {
		return order, nil
	}

	next := models.OrderCancelled
	if status == "success" {
		result, err := co.Payments.Verify(ctx, order.PaymentID)
		if err != nil {
			return order, fmt.Errorf("verifying payment %s: %w", order.PaymentID, err)
		}
		if result.Success && result.Status == models.PaymentApproved {
			next = models.OrderPaid
		}
	}

	updated, _, err := co.Orders.Update(ctx, orderID, func(o *models.Order) error {
		if o.Status != models.OrderPending {
			return errAlreadySettled
		}
		o.Status = next
		return nil
	})
	if errors.Is(err, errAlreadySettled) {
		current, _, err := co.Orders.Get(ctx, orderID)
		return current, err
	}
	return updated, err
}
