package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"paygate/internal/gateway"
	"paygate/internal/store"
)

type OrderCompletePayload struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
}

// orderCompleteHandler godoc
//
//	@Summary		Records a completed payment
//	@Description	Verifies the Razorpay payment signature for (order_id, payment_id) and, only if it checks out, persists an immutable transaction record. A failed verification is a hard stop: nothing is stored.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		OrderCompletePayload	true	"Gateway identifiers, signature and amount of the completed payment"
//	@Success		200		{object}	envelope				"Transaction recorded"
//	@Failure		400		{object}	envelope				"Validation or verification failure"
//	@Failure		409		{object}	envelope				"Transaction already recorded for this order/payment pair"
//	@Router			/order-complete/ [post]
func (app *application) orderCompleteHandler(w http.ResponseWriter, r *http.Request) {
	var payload OrderCompletePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, "Failed to create transaction", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Verification must succeed before anything touches the database.
	if err := app.gateway.VerifySignature(ctx, payload.OrderID, payload.PaymentID, payload.Signature); err != nil {
		if errors.Is(err, gateway.ErrInvalidSignature) {
			app.logger.Warnw("payment signature rejected",
				"order_id", payload.OrderID,
				"payment_id", payload.PaymentID,
			)
		}
		app.gatewayErrorResponse(w, r, "Failed to verify payment", err)
		return
	}

	txn := &store.Transaction{
		OrderID:   payload.OrderID,
		PaymentID: payload.PaymentID,
		Signature: payload.Signature,
		Amount:    payload.Amount,
	}
	if err := app.store.Transactions.Create(ctx, txn); err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			app.conflictResponse(w, r, "Transaction already recorded", err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.logger.Infow("transaction recorded",
		"id", txn.ID,
		"order_id", txn.OrderID,
		"payment_id", txn.PaymentID,
		"amount", txn.Amount,
	)

	if err := app.jsonResponse(w, http.StatusOK, "Transaction created successfully", payload); err != nil {
		app.internalServerError(w, r, err)
	}
}
