// Package apperr defines the error taxonomy of the payment gateway and maps
// errors to classification kinds and HTTP status codes.
package apperr

import (
	"context"
	"errors"
	"net/http"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrMissingFields     = errors.New("missing payment verification fields")
	ErrNotConfigured     = errors.New("razorpay credentials not configured")
	ErrSignatureMismatch = errors.New("invalid signature")
	ErrUpstream          = errors.New("payment processor error")
)

func Kind(err error) string {
	switch {
	case err == nil:
		return ""

	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"

	case errors.Is(err, ErrMissingFields):
		return "missing_fields"

	case errors.Is(err, ErrNotConfigured):
		return "not_configured"

	case errors.Is(err, ErrSignatureMismatch):
		return "signature_mismatch"

	case errors.Is(err, ErrUpstream):
		return "upstream"

	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"

	case errors.Is(err, context.Canceled):
		return "canceled"

	default:
		return "internal"
	}
}

func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrSignatureMismatch):
		return http.StatusBadRequest

	case errors.Is(err, ErrNotConfigured):
		return http.StatusServiceUnavailable

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}
