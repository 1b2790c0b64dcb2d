// Package gateway implements the payment gateway proxy: order creation
// against the Razorpay Orders API and payment signature verification.
package gateway

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/apperr"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/config"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/models"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/razorpay"
)

const defaultCurrency = "INR"

// OrderCreator creates an order with the external payment processor.
type OrderCreator interface {
	CreateOrder(ctx context.Context, order razorpay.OrderRequest) (*models.PaymentOrder, error)
}

// Recorder is an optional best-effort audit sink for created orders and
// verification outcomes. Recording failures never fail the request.
type Recorder interface {
	RecordOrder(order *models.PaymentOrder) error
	RecordVerification(orderID, paymentID string, verified bool) error
}

// UnconfiguredError is returned by CreateOrder when no processor credentials
// are configured and mock mode is off. It carries the normalized amount so
// the caller can still display it.
type UnconfiguredError struct {
	AmountPaise int64
}

func (e *UnconfiguredError) Error() string { return apperr.ErrNotConfigured.Error() }
func (e *UnconfiguredError) Unwrap() error { return apperr.ErrNotConfigured }

// CreateOrderRequest is the inbound order creation payload. Amount is left
// untyped because clients send it as either a JSON number or a string.
type CreateOrderRequest struct {
	Amount   any            `json:"amount"`
	Currency string         `json:"currency"`
	Receipt  string         `json:"receipt"`
	Notes    map[string]any `json:"notes"`
}

type Service struct {
	keyID     string
	keySecret string
	mock      bool
	orders    OrderCreator
	recorder  Recorder
	log       *log.Logger
	debug     bool
}

// New builds a gateway service. orders may be nil when no credentials are
// configured; recorder may be nil when auditing is disabled.
func New(cfg config.Config, orders OrderCreator, recorder Recorder, logger *log.Logger) *Service {
	return &Service{
		keyID:     cfg.RazorpayKeyID,
		keySecret: cfg.RazorpayKeySecret,
		mock:      cfg.MockPayments,
		orders:    orders,
		recorder:  recorder,
		log:       logger,
		debug:     strings.EqualFold(cfg.LogLevel, "DEBUG"),
	}
}

// Configured reports whether processor credentials are present.
func (s *Service) Configured() bool {
	return s.keyID != "" && s.keySecret != ""
}

// MockMode reports whether mock payments are enabled.
func (s *Service) MockMode() bool {
	return s.mock
}

// CreateOrder normalizes the amount, then either creates a real order with
// the processor, synthesizes a mock order, or reports the unconfigured state.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.PaymentOrder, error) {
	amountPaise, err := NormalizeAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	receipt := req.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())
	}

	if !s.Configured() {
		if !s.mock {
			return nil, &UnconfiguredError{AmountPaise: amountPaise}
		}
		order := &models.PaymentOrder{
			ID:          "order_mock_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14],
			Entity:      "order",
			Amount:      amountPaise,
			Currency:    currency,
			Receipt:     receipt,
			Status:      "created",
			Notes:       req.Notes,
			Mock:        true,
			AmountPaise: amountPaise,
			CreatedAt:   time.Now().Unix(),
		}
		s.record(order)
		return order, nil
	}

	created, err := s.orders.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, err
	}

	created.AmountPaise = amountPaise
	if created.CreatedAt == 0 {
		created.CreatedAt = time.Now().Unix()
	}
	s.record(created)
	return created, nil
}

// VerifyPayment resolves the three verification fields from the raw request
// body and checks the payment signature. No cryptographic work happens before
// all three fields are known to be present.
func (s *Service) VerifyPayment(body map[string]any) (models.VerifyResult, error) {
	paymentID := firstString(body, paymentIDAliases)
	orderID := firstString(body, orderIDAliases)
	signature := firstString(body, signatureAliases)

	if paymentID == "" || orderID == "" || signature == "" {
		return models.VerifyResult{}, apperr.ErrMissingFields
	}

	if s.mock {
		return models.VerifyResult{OK: true, Mock: true}, nil
	}

	if s.keySecret == "" {
		return models.VerifyResult{}, apperr.ErrNotConfigured
	}

	expected := Signature(s.keySecret, orderID, paymentID)
	if expected != signature {
		// The expected digest stays server-side; it must never reach the
		// caller.
		if s.debug {
			s.log.Printf("[VERIFY] signature mismatch for order %s: expected %s", orderID, expected)
		}
		s.recordVerification(orderID, paymentID, false)
		return models.VerifyResult{}, apperr.ErrSignatureMismatch
	}

	s.recordVerification(orderID, paymentID, true)
	return models.VerifyResult{OK: true}, nil
}

func (s *Service) record(order *models.PaymentOrder) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordOrder(order); err != nil {
		s.log.Printf("[LEDGER] failed to record order %s: %v", order.ID, err)
	}
}

func (s *Service) recordVerification(orderID, paymentID string, verified bool) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordVerification(orderID, paymentID, verified); err != nil {
		s.log.Printf("[LEDGER] failed to record verification for order %s: %v", orderID, err)
	}
}
