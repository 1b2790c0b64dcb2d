// Package notify reacts to rider-assignment changes on orders and delivers
// a push notification to the assigned rider, best effort.
package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/metrics"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/models"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/store"
)

const notificationTitle = "New Delivery Assigned"

// PushSender delivers a batch of push messages and returns the delivery
// service's raw response body for logging.
type PushSender interface {
	Send(ctx context.Context, messages []models.PushMessage) (string, error)
}

// Notifier handles one assignment event per call. It deliberately has no
// error result: the order write that produced the event must never be
// blocked, delayed, or rolled back by a notification outcome, so every
// failure path here is logged and swallowed.
type Notifier struct {
	tokens store.TokenStore
	orders store.OrderStore
	push   PushSender
	log    *log.Logger
}

func New(tokens store.TokenStore, orders store.OrderStore, push PushSender, logger *log.Logger) *Notifier {
	return &Notifier{
		tokens: tokens,
		orders: orders,
		push:   push,
		log:    logger,
	}
}

// Notify processes a single rider-assignment change event.
func (n *Notifier) Notify(ctx context.Context, evt models.AssignmentEvent) {
	// Spurious rewrites and unassignments are not notifiable.
	if evt.After == evt.Before {
		metrics.NotificationsSkippedTotal.Inc()
		return
	}
	if evt.After == "" {
		metrics.NotificationsSkippedTotal.Inc()
		return
	}

	token, err := n.tokens.Token(ctx, evt.After)
	if err != nil {
		n.log.Printf("[NOTIFY] token lookup failed for rider %s: %v", evt.After, err)
		metrics.NotificationFailuresTotal.Inc()
		return
	}
	if token == "" {
		// A rider with no registered device cannot be notified.
		metrics.NotificationsSkippedTotal.Inc()
		return
	}

	displayID := evt.OrderKey
	pickupAddress := ""
	order, err := n.orders.Order(ctx, evt.OrderKey)
	if err != nil {
		n.log.Printf("[NOTIFY] order lookup failed for %s: %v", evt.OrderKey, err)
		metrics.NotificationFailuresTotal.Inc()
		return
	}
	if order != nil {
		if order.OrderNumber != "" {
			displayID = order.OrderNumber
		}
		pickupAddress = order.PickupAddress
	}

	message := models.PushMessage{
		To:    token,
		Sound: "default",
		Title: notificationTitle,
		Body:  fmt.Sprintf("Order %s assigned to you. Pickup: %s", displayID, pickupAddress),
		Data:  map[string]any{"orderId": evt.OrderKey},
	}

	response, err := n.push.Send(ctx, []models.PushMessage{message})
	if err != nil {
		n.log.Printf("[NOTIFY] push delivery failed for order %s: %v", evt.OrderKey, err)
		metrics.NotificationFailuresTotal.Inc()
		return
	}

	n.log.Printf("[NOTIFY] push sent for order %s to rider %s: %s", evt.OrderKey, evt.After, response)
	metrics.NotificationsSentTotal.Inc()
}
