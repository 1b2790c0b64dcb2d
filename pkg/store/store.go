// Package store provides the lookups and the assignment-event queue backing
// the order-assignment notifier. The authoritative data lives in a hosted
// document store; these are read-side views plus a small work queue.
package store

import (
	"context"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/models"
)

// TokenStore looks up the Expo push token registered for a rider. An empty
// token with a nil error means the rider has no registered device, which is
// not an error condition.
type TokenStore interface {
	Token(ctx context.Context, riderID string) (string, error)
}

// OrderStore looks up an order record by its key. A nil record with a nil
// error means the order was not found.
type OrderStore interface {
	Order(ctx context.Context, orderKey string) (*models.OrderRecord, error)
}

// EventQueue carries rider-assignment change events from the write path to
// the notifier service.
type EventQueue interface {
	Enqueue(ctx context.Context, evt *models.AssignmentEvent) error
	DequeueBatch(ctx context.Context, batchSize int) ([]*models.AssignmentEvent, error)
}
