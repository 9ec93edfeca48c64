package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"paygate/internal/gateway"
	"paygate/internal/store"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// gatewayMock implements gateway.Client and counts calls so tests can assert
// that invalid requests never reach the gateway.
type gatewayMock struct {
	createCalls int
	verifyCalls int

	createOrderFunc func(req gateway.OrderRequest) (*gateway.Order, error)
	verifyErr       error
}

func (m *gatewayMock) CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
	m.createCalls++
	if m.createOrderFunc != nil {
		return m.createOrderFunc(req)
	}
	return &gateway.Order{
		ID:       "order_JkVtugqb6axZp8",
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "created",
		Raw: map[string]interface{}{
			"id":       "order_JkVtugqb6axZp8",
			"entity":   "order",
			"amount":   float64(req.Amount),
			"currency": req.Currency,
			"status":   "created",
		},
	}, nil
}

func (m *gatewayMock) VerifySignature(ctx context.Context, orderID, paymentID, signature string) error {
	m.verifyCalls++
	return m.verifyErr
}

func newTestApplication(t *testing.T, gw gateway.Client, db *sql.DB) *application {
	t.Helper()

	app := &application{
		config:  config{env: "test"},
		logger:  zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel)).Sugar(),
		gateway: gw,
	}
	if db != nil {
		app.store = store.NewStorage(db)
	}
	return app
}

func executeRequest(app *application, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	app.mount().ServeHTTP(rr, req)
	return rr
}

type responseEnvelope struct {
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       map[string]any  `json:"data"`
	Error      json.RawMessage `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()

	var env responseEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", rr.Body.String(), err)
	}
	return env
}

// fieldErrors decodes the error member of a validation failure envelope.
func fieldErrors(t *testing.T, env responseEnvelope) map[string][]string {
	t.Helper()

	out := make(map[string][]string)
	if err := json.Unmarshal(env.Error, &out); err != nil {
		t.Fatalf("Expected field-keyed error map, got %s: %v", env.Error, err)
	}
	return out
}

func checkStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rr.Code != want {
		t.Errorf("Expected status %d, got %d (body %s)", want, rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", ct)
	}
}
