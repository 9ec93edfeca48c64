package gateway

import (
	"context"

	"github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// requestTimeoutSeconds caps every SDK call to the gateway. The SDK has no
// context support, so the bound lives on its HTTP client.
const requestTimeoutSeconds = 10

// RazorpayClient adapts the official Razorpay SDK to the Client interface.
// It is stateless and safe to share across requests.
type RazorpayClient struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	client := razorpay.NewClient(keyID, keySecret)
	client.Order.Request.SetTimeout(requestTimeoutSeconds)

	return &RazorpayClient{
		client:    client,
		keySecret: keySecret,
	}
}

// CreateOrder registers a new order with Razorpay. The gateway owns currency
// validation; an unsupported currency comes back as a GatewayError with the
// gateway's message attached. No retry on failure.
func (c *RazorpayClient) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
	}
	if req.Receipt != "" {
		data["receipt"] = req.Receipt
	}

	raw, err := c.client.Order.Create(data, nil)
	if err != nil {
		return nil, &GatewayError{Op: "create order", Err: err}
	}

	return orderFromResponse(raw), nil
}

// VerifySignature checks the HMAC signature Razorpay issues for a completed
// payment against the shared key secret. The check is deterministic and
// local to the SDK; a mismatch is a hard stop.
func (c *RazorpayClient) VerifySignature(ctx context.Context, orderID, paymentID, signature string) error {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  signature,
	}

	if !utils.VerifyPaymentSignature(params, signature, c.keySecret) {
		return ErrInvalidSignature
	}
	return nil
}

func orderFromResponse(raw map[string]interface{}) *Order {
	order := &Order{Raw: raw}

	if v, ok := raw["id"].(string); ok {
		order.ID = v
	}
	// JSON numbers decode as float64
	if v, ok := raw["amount"].(float64); ok {
		order.Amount = int64(v)
	}
	if v, ok := raw["currency"].(string); ok {
		order.Currency = v
	}
	if v, ok := raw["status"].(string); ok {
		order.Status = v
	}
	return order
}
