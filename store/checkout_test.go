package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/storage"
)

type fakeGateway struct {
	requests []models.PaymentLinkRequest
	status   string
	linkErr  error
	onLink   func()
}

func (g *fakeGateway) GenerateLink(_ context.Context, req models.PaymentLinkRequest) (models.PaymentLink, error) {
	g.requests = append(g.requests, req)
	if g.onLink != nil {
		g.onLink()
	}
	if g.linkErr != nil {
		return models.PaymentLink{}, g.linkErr
	}
	return models.PaymentLink{
		Success:    true,
		PaymentID:  "PAY-1",
		PaymentURL: "/pago/resultado?order_id=" + req.OrderID + "&status=success",
	}, nil
}

func (g *fakeGateway) Verify(_ context.Context, paymentID string) (models.PaymentStatus, error) {
	return models.PaymentStatus{Success: true, Status: g.status}, nil
}

type chanNotifier chan models.Order

func (n chanNotifier) SendOrderConfirmationEmail(order models.Order) error {
	n <- order
	return nil
}

func newCheckout(t *testing.T) (*Checkout, *CartStore, *fakeGateway, chanNotifier) {
	t.Helper()
	ctx := context.Background()
	slots := storage.NewMemorySlots()
	cart, err := OpenCart(ctx, slots, storage.KeyCart)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(ctx, models.Product{ID: "a", Name: "A", Price: 1000, SalePrice: price(800), Stock: 10}, 2))
	require.NoError(t, cart.AddItem(ctx, models.Product{ID: "b", Name: "B", Price: 500, Stock: 10}, 1))

	gw := &fakeGateway{status: models.PaymentApproved}
	notifier := make(chanNotifier, 1)
	co := &Checkout{Orders: NewOrderStore(slots), Payments: gw, Notifier: notifier}
	return co, cart, gw, notifier
}

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		Customer: models.CustomerInfo{
			Name:  "Juan Pérez",
			Email: "juan@example.cl",
			Phone: "+56912345678",
			RUT:   "12.345.678-5",
		},
		Shipping: &models.ShippingInfo{Address: "Av. Siempre Viva 742", City: "Santiago"},
	}
}

func TestCheckout_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	co, cart, gw, notifier := newCheckout(t)

	order, err := co.PlaceOrder(ctx, cart, validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, int64(2100), order.Subtotal)
	assert.Equal(t, int64(399), order.Tax)
	assert.Equal(t, int64(2499), order.Total)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "123456785", order.Customer.RUT)
	assert.Equal(t, "PAY-1", order.PaymentID)
	assert.Contains(t, order.PaymentURL, order.ID)
	assert.Regexp(t, `^HD-\d{6}$`, order.OrderNumber)
	assert.Empty(t, cart.Items())

	require.Len(t, gw.requests, 1)
	assert.Equal(t, int64(2499), gw.requests[0].Amount)
	assert.Equal(t, order.ID, gw.requests[0].OrderID)

	stored, found, err := co.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "PAY-1", stored.PaymentID)

	select {
	case sent := <-notifier:
		assert.Equal(t, order.ID, sent.ID)
	case <-time.After(time.Second):
		t.Fatal("confirmation email was not sent")
	}
}

func TestCheckout_Rejects(t *testing.T) {
	ctx := context.Background()

	co, cart, _, _ := newCheckout(t)
	require.NoError(t, cart.Clear(ctx))
	_, err := co.PlaceOrder(ctx, cart, validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)

	for name, mutate := range map[string]func(*CheckoutRequest){
		"missing name": func(r *CheckoutRequest) { r.Customer.Name = "" },
		"bad email":    func(r *CheckoutRequest) { r.Customer.Email = "juan@example" },
		"bad rut":      func(r *CheckoutRequest) { r.Customer.RUT = "12.345.678-9" },
	} {
		t.Run(name, func(t *testing.T) {
			co, cart, gw, _ := newCheckout(t)
			req := validRequest()
			mutate(&req)
			_, err := co.PlaceOrder(ctx, cart, req)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Len(t, cart.Items(), 2)
			assert.Empty(t, gw.requests)
		})
	}
}

func TestCheckout_DelayHonoursContext(t *testing.T) {
	co, cart, gw, _ := newCheckout(t)
	co.Delay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := co.PlaceOrder(ctx, cart, validRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, cart.Items(), 2)
	assert.Empty(t, gw.requests)
}

func TestCheckout_PaymentLinkFailureKeepsCart(t *testing.T) {
	co, cart, gw, _ := newCheckout(t)
	gw.linkErr = errors.New("gateway down")

	order, err := co.PlaceOrder(context.Background(), cart, validRequest())
	assert.Error(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Len(t, cart.Items(), 2)
}

func TestCheckout_ConfirmPayment(t *testing.T) {
	ctx := context.Background()
	co, cart, gw, _ := newCheckout(t)
	order, err := co.PlaceOrder(ctx, cart, validRequest())
	require.NoError(t, err)

	paid, err := co.ConfirmPayment(ctx, order.ID, "success")
	require.NoError(t, err)
	assert.Equal(t, models.OrderPaid, paid.Status)

	gw.status = models.PaymentRejected
	replayed, err := co.ConfirmPayment(ctx, order.ID, "failure")
	require.NoError(t, err)
	assert.Equal(t, models.OrderPaid, replayed.Status)

	_, err = co.ConfirmPayment(ctx, "ORD-missing", "success")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckout_ConfirmPaymentRejected(t *testing.T) {
	ctx := context.Background()
	co, cart, gw, _ := newCheckout(t)
	gw.status = models.PaymentRejected
	order, err := co.PlaceOrder(ctx, cart, validRequest())
	require.NoError(t, err)

	rejected, err := co.ConfirmPayment(ctx, order.ID, "success")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, rejected.Status)
}

func TestCheckout_ConfirmPaymentLeavesSettledOrders(t *testing.T) {
	ctx := context.Background()
	co, cart, _, _ := newCheckout(t)
	order, err := co.PlaceOrder(ctx, cart, validRequest())
	require.NoError(t, err)
	_, _, err = co.Orders.UpdateStatus(ctx, order.ID, models.OrderShipped)
	require.NoError(t, err)

	for _, status := range []string{"failure", "success", ""} {
		got, err := co.ConfirmPayment(ctx, order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, models.OrderShipped, got.Status, status)
	}
	stored, _, err := co.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, stored.Status)
}

func TestCheckout_KeepsLinesAddedDuringPlacement(t *testing.T) {
	ctx := context.Background()
	co, cart, gw, _ := newCheckout(t)
	gw.onLink = func() {
		require.NoError(t, cart.AddItem(ctx, models.Product{ID: "a", Name: "A", Price: 1000, SalePrice: price(800), Stock: 10}, 1))
		require.NoError(t, cart.AddItem(ctx, models.Product{ID: "c", Name: "C", Price: 300, Stock: 10}, 4))
	}

	order, err := co.PlaceOrder(ctx, cart, validRequest())
	require.NoError(t, err)
	assert.Len(t, order.Items, 2)

	left := map[string]int{}
	for _, item := range cart.Items() {
		left[item.ID] = item.Quantity
	}
	assert.Equal(t, map[string]int{"a": 1, "c": 4}, left)
}
