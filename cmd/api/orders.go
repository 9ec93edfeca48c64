package main

import (
	"context"
	"net/http"
	"time"

	"paygate/internal/gateway"

	"github.com/google/uuid"
)

type CreateOrderPayload struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// createOrderHandler godoc
//
//	@Summary		Creates a Razorpay order
//	@Description	Validates the amount/currency pair and registers a new order with Razorpay. The gateway's order object is returned to the caller unmodified; its id is what the checkout uses to collect the payment.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateOrderPayload	true	"Amount in the smallest currency unit and a 3-letter currency code"
//	@Success		200		{object}	envelope			"Order created"
//	@Failure		400		{object}	envelope			"Validation or gateway failure"
//	@Router			/create-order/ [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateOrderPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// The currency list is the gateway's call, not ours; only shape is
	// checked here.
	if err := Validate.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, "Failed to create order", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := app.gateway.CreateOrder(ctx, gateway.OrderRequest{
		Amount:   payload.Amount,
		Currency: payload.Currency,
		Receipt:  uuid.New().String(),
	})
	if err != nil {
		app.gatewayErrorResponse(w, r, "Failed to create order", err)
		return
	}

	app.logger.Infow("order created", "order_id", order.ID, "amount", order.Amount, "currency", order.Currency)

	if err := app.jsonResponse(w, http.StatusOK, "Order created successfully", order.Raw); err != nil {
		app.internalServerError(w, r, err)
	}
}
