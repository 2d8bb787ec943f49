package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/Abhishek-ak7/overseas-site-sub002/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayVerifySignature(t *testing.T) {
	gw := NewRazorpayGateway("https://api.razorpay.com/v1", "rzp_test_key", "the-secret")

	valid := signPayload("the-secret", "order_abc", "pay_xyz")

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{name: "valid signature", orderID: "order_abc", paymentID: "pay_xyz", signature: valid, want: true},
		{name: "swapped payment id", orderID: "order_abc", paymentID: "pay_other", signature: valid, want: false},
		{name: "swapped order id", orderID: "order_other", paymentID: "pay_xyz", signature: valid, want: false},
		{name: "wrong secret", orderID: "order_abc", paymentID: "pay_xyz", signature: signPayload("other-secret", "order_abc", "pay_xyz"), want: false},
		{name: "empty signature", orderID: "order_abc", paymentID: "pay_xyz", signature: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gw.VerifySignature(tt.orderID, tt.paymentID, tt.signature))
		})
	}
}

func TestStripeGatewayIsStub(t *testing.T) {
	gw := &StripeGateway{}

	checkout, err := gw.CreateOrder(499900, "INR", "rcpt_abc")
	require.NoError(t, err)

	// The discriminator goes out without key material so the frontend can
	// show its coming-soon notice
	assert.Equal(t, "stripe", checkout.Gateway)
	assert.Empty(t, checkout.OrderID)
	assert.Empty(t, checkout.KeyID)
	assert.Equal(t, int64(499900), checkout.Amount)
	assert.Equal(t, "INR", checkout.Currency)

	assert.False(t, gw.VerifySignature("order_abc", "pay_xyz", "anything"))
}

func TestActiveGatewaySelection(t *testing.T) {
	previous := config.AppConfig
	t.Cleanup(func() { config.AppConfig = previous })

	config.AppConfig = &config.Config{
		PaymentGateway:    "razorpay",
		RazorpayApiURL:    "https://api.razorpay.com/v1",
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "the-secret",
	}
	_, ok := ActiveGateway().(*RazorpayGateway)
	assert.True(t, ok)

	config.AppConfig.PaymentGateway = "stripe"
	_, ok = ActiveGateway().(*StripeGateway)
	assert.True(t, ok)

	// Unknown names degrade to the stub instead of a broken widget
	config.AppConfig.PaymentGateway = "paypal"
	_, ok = ActiveGateway().(*StripeGateway)
	assert.True(t, ok)
}
