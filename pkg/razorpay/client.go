// Package razorpay is a minimal client for the Razorpay Orders API.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/apperr"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/models"
)

type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
	log        *log.Logger
}

// OrderRequest is the payload for POST /v1/orders. Amount is in paise.
type OrderRequest struct {
	Amount   int64          `json:"amount"`
	Currency string         `json:"currency"`
	Receipt  string         `json:"receipt"`
	Notes    map[string]any `json:"notes,omitempty"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func NewClient(keyID, keySecret, baseURL string, logger *log.Logger) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     30 * time.Second,
				DisableKeepAlives:   false,
			},
		},
		log: logger,
	}
}

// CreateOrder creates an order with the payment processor. The processor owns
// the order lifecycle from here; the returned record is not mutated again by
// this service.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (*models.PaymentOrder, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("%w: %s", apperr.ErrUpstream, apiErr.Error.Description)
		}
		c.log.Printf("[RAZORPAY] order creation returned status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", apperr.ErrUpstream, resp.StatusCode)
	}

	var created models.PaymentOrder
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: decoding order response: %v", apperr.ErrUpstream, err)
	}
	return &created, nil
}
