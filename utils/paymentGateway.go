package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Abhishek-ak7/overseas-site-sub002/config"

	"github.com/go-resty/resty/v2"
)

// ErrGatewayNotSupported marks a checkout gateway that is configured but not
// wired yet. Callers surface it as an explicit "coming soon" branch.
var ErrGatewayNotSupported = errors.New("payment gateway not supported yet")

// CheckoutOrder is what the frontend needs to open the checkout widget
type CheckoutOrder struct {
	Gateway  string `json:"gateway"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id,omitempty"`
}

// PaymentGateway abstracts the hosted checkout provider
type PaymentGateway interface {
	Name() string
	CreateOrder(amount int64, currency, receipt string) (*CheckoutOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// ActiveGateway returns the gateway selected by configuration.
// Unknown names fall back to the stripe stub so checkout degrades to the
// "coming soon" branch instead of a broken widget.
func ActiveGateway() PaymentGateway {
	switch config.AppConfig.PaymentGateway {
	case "razorpay":
		return NewRazorpayGateway(
			config.AppConfig.RazorpayApiURL,
			config.AppConfig.RazorpayKeyID,
			config.AppConfig.RazorpayKeySecret,
		)
	default:
		return &StripeGateway{}
	}
}

// RazorpayGateway creates orders through the Razorpay Orders API and verifies
// checkout callbacks with the documented HMAC-SHA256 signature scheme.
type RazorpayGateway struct {
	apiURL    string
	keyID     string
	keySecret string
	client    *resty.Client
}

func NewRazorpayGateway(apiURL, keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		apiURL:    apiURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    resty.New(),
	}
}

func (g *RazorpayGateway) Name() string {
	return "razorpay"
}

// CreateOrder creates an order on Razorpay and returns the widget parameters
func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string) (*CheckoutOrder, error) {
	resp, err := g.client.R().
		SetBasicAuth(g.keyID, g.keySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
		}).
		Post(g.apiURL + "/orders")
	if err != nil {
		log.Printf("[PAYMENT] Razorpay order creation failed: %v", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if resp.StatusCode() != 200 {
		log.Printf("[PAYMENT] Razorpay order creation rejected: %s", resp.String())
		return nil, fmt.Errorf("gateway error: status %d", resp.StatusCode())
	}

	var orderResp struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Status   string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &orderResp); err != nil {
		return nil, fmt.Errorf("invalid order response: %w", err)
	}

	return &CheckoutOrder{
		Gateway:  g.Name(),
		OrderID:  orderResp.ID,
		Amount:   orderResp.Amount,
		Currency: orderResp.Currency,
		KeyID:    g.keyID,
	}, nil
}

// VerifySignature checks the checkout callback signature:
// HMAC-SHA256(orderID + "|" + paymentID) keyed with the API secret.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// StripeGateway is the not-yet-supported branch. Order creation returns the
// gateway discriminator without key material so the frontend can show its
// "coming soon" notice; verification always fails.
type StripeGateway struct{}

func (g *StripeGateway) Name() string {
	return "stripe"
}

func (g *StripeGateway) CreateOrder(amount int64, currency, receipt string) (*CheckoutOrder, error) {
	return &CheckoutOrder{
		Gateway:  g.Name(),
		Amount:   amount,
		Currency: currency,
	}, nil
}

func (g *StripeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return false
}
