package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/config"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/gateway"
)

func newTestRouter(cfg config.Config) *Router {
	gw := gateway.New(cfg, nil, nil, log.New(io.Discard, "", 0))
	r := NewRouter(gw)
	r.RegisterRoutes()
	return r
}

func postJSON(t *testing.T, r *Router, path string, body any) *http.Response {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.App.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestCreateOrderMockHTTP(t *testing.T) {
	t.Parallel()

	r := newTestRouter(config.Config{MockPayments: true})

	resp := postJSON(t, r, "/api/razorpay/create-order", map[string]any{"amount": 500})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	out := decodeBody(t, resp)
	if out["amount"] != float64(50000) {
		t.Fatalf("expected amount 50000, got %v", out["amount"])
	}
	if out["status"] != "created" {
		t.Fatalf("expected status created, got %v", out["status"])
	}
	if out["mock"] != true {
		t.Fatalf("expected mock order, got %v", out["mock"])
	}
}

func TestCreateOrderInvalidAmountHTTP(t *testing.T) {
	t.Parallel()

	r := newTestRouter(config.Config{MockPayments: true})

	resp := postJSON(t, r, "/api/razorpay/create-order", map[string]any{"amount": "abc"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if out := decodeBody(t, resp); out["error"] != "Invalid amount" {
		t.Fatalf("expected Invalid amount, got %v", out["error"])
	}
}

func TestCreateOrderUnconfiguredHTTP(t *testing.T) {
	t.Parallel()

	r := newTestRouter(config.Config{})

	resp := postJSON(t, r, "/api/razorpay/create-order", map[string]any{"amount": 500})
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}

	out := decodeBody(t, resp)
	if out["amountPaise"] != float64(50000) {
		t.Fatalf("expected amountPaise 50000, got %v", out["amountPaise"])
	}
	if out["error"] == "" {
		t.Fatal("expected error message")
	}
}

func TestVerifyPaymentHTTP(t *testing.T) {
	t.Parallel()

	cfg := config.Config{RazorpayKeyID: "rzp_test_key", RazorpayKeySecret: "test_secret"}
	r := newTestRouter(cfg)

	signature := gateway.Signature("test_secret", "order_1", "pay_1")

	resp := postJSON(t, r, "/api/razorpay/verify-payment", map[string]any{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  signature,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if out := decodeBody(t, resp); out["ok"] != true {
		t.Fatalf("expected ok:true, got %v", out)
	}

	resp = postJSON(t, r, "/api/razorpay/verify-payment", map[string]any{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "0000000000000000000000000000000000000000000000000000000000000000",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	out := decodeBody(t, resp)
	if out["ok"] != false || out["error"] != "Invalid signature" {
		t.Fatalf("expected ok:false Invalid signature, got %v", out)
	}
}

func TestVerifyPaymentMissingFieldsHTTP(t *testing.T) {
	t.Parallel()

	cfg := config.Config{RazorpayKeyID: "rzp_test_key", RazorpayKeySecret: "test_secret"}
	r := newTestRouter(cfg)

	resp := postJSON(t, r, "/api/razorpay/verify-payment", map[string]any{
		"razorpay_order_id": "order_1",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if out := decodeBody(t, resp); out["error"] != "Missing payment verification fields" {
		t.Fatalf("expected missing fields message, got %v", out["error"])
	}
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "configured",
			cfg:  config.Config{RazorpayKeyID: "k", RazorpayKeySecret: "s"},
			want: "Razorpay: configured",
		},
		{
			name: "mock",
			cfg:  config.Config{MockPayments: true},
			want: "not configured (mock mode)",
		},
		{
			name: "unconfigured",
			cfg:  config.Config{},
			want: "Razorpay: not configured",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newTestRouter(tt.cfg)
			resp, err := r.App.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			if !strings.Contains(string(body), tt.want) {
				t.Fatalf("expected status text to contain %q, got %q", tt.want, string(body))
			}
		})
	}
}

func TestHealthCheckHTTP(t *testing.T) {
	t.Parallel()

	r := newTestRouter(config.Config{})
	resp, err := r.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if out := decodeBody(t, resp); out["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", out)
	}
}
