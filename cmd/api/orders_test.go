package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"paygate/internal/gateway"
)

func TestCreateOrder_Success(t *testing.T) {
	gw := &gatewayMock{}
	app := newTestApplication(t, gw, nil)

	body, _ := json.Marshal(CreateOrderPayload{Amount: 299900, Currency: "INR"})
	rr := executeRequest(app, "POST", "/v1/create-order/", body)

	checkStatus(t, rr, http.StatusOK)

	env := decodeEnvelope(t, rr)
	if env.StatusCode != http.StatusOK {
		t.Errorf("Expected status_code 200, got %d", env.StatusCode)
	}
	if env.Message != "Order created successfully" {
		t.Errorf("Unexpected message %q", env.Message)
	}
	if got := env.Data["amount"]; got != float64(299900) {
		t.Errorf("Expected data.amount 299900, got %v", got)
	}
	if got := env.Data["currency"]; got != "INR" {
		t.Errorf("Expected data.currency INR, got %v", got)
	}
	id, _ := env.Data["id"].(string)
	if !strings.HasPrefix(id, "order_") {
		t.Errorf("Expected gateway-assigned order_* id, got %q", id)
	}

	if gw.createCalls != 1 {
		t.Errorf("Expected 1 gateway call, got %d", gw.createCalls)
	}
}

func TestCreateOrder_MissingFields(t *testing.T) {
	gw := &gatewayMock{}
	app := newTestApplication(t, gw, nil)

	rr := executeRequest(app, "POST", "/v1/create-order/", []byte(`{}`))

	checkStatus(t, rr, http.StatusBadRequest)

	env := decodeEnvelope(t, rr)
	errs := fieldErrors(t, env)
	if _, ok := errs["amount"]; !ok {
		t.Errorf("Expected amount in error map, got %v", errs)
	}
	if _, ok := errs["currency"]; !ok {
		t.Errorf("Expected currency in error map, got %v", errs)
	}

	// Invalid input must never reach the gateway.
	if gw.createCalls != 0 {
		t.Errorf("Expected 0 gateway calls, got %d", gw.createCalls)
	}
}

func TestCreateOrder_NegativeAmount(t *testing.T) {
	gw := &gatewayMock{}
	app := newTestApplication(t, gw, nil)

	body, _ := json.Marshal(CreateOrderPayload{Amount: -100, Currency: "INR"})
	rr := executeRequest(app, "POST", "/v1/create-order/", body)

	checkStatus(t, rr, http.StatusBadRequest)

	errs := fieldErrors(t, decodeEnvelope(t, rr))
	if _, ok := errs["amount"]; !ok {
		t.Errorf("Expected amount in error map, got %v", errs)
	}
	if gw.createCalls != 0 {
		t.Errorf("Expected 0 gateway calls, got %d", gw.createCalls)
	}
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	gw := &gatewayMock{
		createOrderFunc: func(req gateway.OrderRequest) (*gateway.Order, error) {
			return nil, &gateway.GatewayError{Op: "create order", Err: errors.New("Currency is not supported")}
		},
	}
	app := newTestApplication(t, gw, nil)

	body, _ := json.Marshal(CreateOrderPayload{Amount: 299900, Currency: "XYZ"})
	rr := executeRequest(app, "POST", "/v1/create-order/", body)

	checkStatus(t, rr, http.StatusBadRequest)

	env := decodeEnvelope(t, rr)
	if env.Message != "Failed to create order" {
		t.Errorf("Unexpected message %q", env.Message)
	}
	if !strings.Contains(string(env.Error), "Currency is not supported") {
		t.Errorf("Expected the gateway's message in the envelope, got %s", env.Error)
	}
}

func TestCreateOrder_MalformedBody(t *testing.T) {
	gw := &gatewayMock{}
	app := newTestApplication(t, gw, nil)

	rr := executeRequest(app, "POST", "/v1/create-order/", []byte(`{"amount": "not-a-number"}`))

	checkStatus(t, rr, http.StatusBadRequest)
	if gw.createCalls != 0 {
		t.Errorf("Expected 0 gateway calls, got %d", gw.createCalls)
	}
}
