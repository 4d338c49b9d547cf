package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/utils"
)

func TestGenerateLink_Demo(t *testing.T) {
	g := NewGateway(utils.PaymentConfig{SellerID: DemoSeller})
	g.now = func() time.Time { return time.UnixMilli(1718000000000) }

	link, err := g.GenerateLink(context.Background(), models.PaymentLinkRequest{OrderID: "ORD-1-abc", Amount: 2499})
	require.NoError(t, err)
	assert.True(t, link.Success)
	assert.Equal(t, "/pago/resultado?order_id=ORD-1-abc&status=success", link.PaymentURL)
	assert.Equal(t, "PAY-1718000000000", link.PaymentID)
}

func TestGenerateLink_LiveSellerFallsBackToDemo(t *testing.T) {
	g := NewGateway(utils.PaymentConfig{SellerID: "REAL"})
	assert.False(t, g.Demo())

	link, err := g.GenerateLink(context.Background(), models.PaymentLinkRequest{OrderID: "ORD-2"})
	require.NoError(t, err)
	assert.True(t, link.Success)
}

func TestGenerateLink_Errors(t *testing.T) {
	g := NewGateway(utils.PaymentConfig{})
	link, err := g.GenerateLink(context.Background(), models.PaymentLinkRequest{})
	assert.Error(t, err)
	assert.False(t, link.Success)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.GenerateLink(ctx, models.PaymentLinkRequest{OrderID: "ORD-3"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerify(t *testing.T) {
	g := NewGateway(utils.PaymentConfig{SellerID: DemoSeller})
	status, err := g.Verify(context.Background(), "PAY-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatus{Success: true, Status: models.PaymentApproved}, status)

	status, err = g.Verify(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, status.Success)
}
