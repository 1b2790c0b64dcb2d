package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// PaymentOrder mirrors the order entity returned by the Razorpay Orders API.
// Mock orders carry the same shape with Mock set and an id prefixed with
// "order_mock_". AmountPaise is attached by the gateway for debugging and is
// always the normalized amount that was sent upstream.
type PaymentOrder struct {
	ID          string         `json:"id"`
	Entity      string         `json:"entity,omitempty"`
	Amount      int64          `json:"amount"`
	Currency    string         `json:"currency"`
	Receipt     string         `json:"receipt"`
	Status      string         `json:"status"`
	Notes       map[string]any `json:"notes,omitempty"`
	Mock        bool           `json:"mock,omitempty"`
	AmountPaise int64          `json:"amount_paise,omitempty"`
	CreatedAt   int64          `json:"created_at"`
}

// VerifyResult is the outcome of a payment signature check.
type VerifyResult struct {
	OK   bool `json:"ok"`
	Mock bool `json:"mock,omitempty"`
}

// OrderRecord is the slice of a storefront order the notifier cares about.
// Everything else on the order document is opaque to this service.
type OrderRecord struct {
	ID            string `json:"id"`
	OrderNumber   string `json:"orderNumber,omitempty"`
	RiderID       string `json:"riderId,omitempty"`
	PickupAddress string `json:"pickupAddress,omitempty"`
}

// AssignmentEvent is a change event on an order's rider-assignment field.
type AssignmentEvent struct {
	OrderKey string `json:"orderId"`
	Before   string `json:"before"`
	After    string `json:"after"`
}

// PushMessage is a single Expo push API message.
type PushMessage struct {
	To    string         `json:"to"`
	Sound string         `json:"sound"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}
