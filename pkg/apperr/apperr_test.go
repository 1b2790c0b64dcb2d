package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKind(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("wrapped: %w", ErrSignatureMismatch)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid_amount", err: ErrInvalidAmount, want: "invalid_amount"},
		{name: "missing_fields", err: ErrMissingFields, want: "missing_fields"},
		{name: "not_configured", err: ErrNotConfigured, want: "not_configured"},
		{name: "signature_mismatch", err: ErrSignatureMismatch, want: "signature_mismatch"},
		{name: "signature_mismatch_wrapped", err: wrapped, want: "signature_mismatch"},
		{name: "upstream", err: ErrUpstream, want: "upstream"},
		{name: "deadline", err: context.DeadlineExceeded, want: "timeout"},
		{name: "canceled", err: context.Canceled, want: "canceled"},
		{name: "unknown", err: errors.New("unknown"), want: "internal"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Kind(tt.err); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("wrapped: %w", ErrNotConfigured)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid_amount", err: ErrInvalidAmount, want: http.StatusBadRequest},
		{name: "missing_fields", err: ErrMissingFields, want: http.StatusBadRequest},
		{name: "signature_mismatch", err: ErrSignatureMismatch, want: http.StatusBadRequest},
		{name: "not_configured", err: ErrNotConfigured, want: http.StatusServiceUnavailable},
		{name: "not_configured_wrapped", err: wrapped, want: http.StatusServiceUnavailable},
		{name: "upstream", err: ErrUpstream, want: http.StatusInternalServerError},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("unknown"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
