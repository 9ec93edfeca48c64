package gateway

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidSignature means the payment signature did not match what the
// gateway secret produces for (order_id, payment_id). Treat it as a
// tampering signal, never as a transient fault.
var ErrInvalidSignature = errors.New("payment signature verification failed")

// Client is the payment-gateway surface the handlers depend on.
type Client interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	VerifySignature(ctx context.Context, orderID, paymentID, signature string) error
}

type OrderRequest struct {
	Amount   int64  // smallest currency unit (paise for INR)
	Currency string // 3-letter code, validated authoritatively by the gateway
	Receipt  string
}

// Order is the gateway's order descriptor. Raw keeps the full response so
// handlers can return it to callers unmodified.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Status   string // created | attempted | paid, lifecycle owned by the gateway
	Raw      map[string]interface{}
}

// GatewayError wraps a transport or gateway-side failure. The underlying
// error carries the gateway's own message and is surfaced to the caller.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("razorpay: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
