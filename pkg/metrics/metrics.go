package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the payment gateway and the assignment notifier.
var (
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_orders_created_total",
			Help: "Total number of payment orders created with the processor",
		},
	)

	MockOrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_orders_mock_total",
			Help: "Total number of synthetic mock payment orders created",
		},
	)

	OrderCreationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_order_failures_total",
			Help: "Total number of failed order creation attempts",
		},
	)

	VerificationsOKTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_verifications_ok_total",
			Help: "Total number of successful payment signature verifications",
		},
	)

	VerificationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_verification_failures_total",
			Help: "Total number of rejected payment signature verifications",
		},
	)

	NotificationsSentTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_notifications_sent_total",
			Help: "Total number of rider assignment push notifications sent",
		},
	)

	NotificationsSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_notifications_skipped_total",
			Help: "Total number of assignment events skipped (no-op or no token)",
		},
	)

	NotificationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_notification_failures_total",
			Help: "Total number of failed push notification attempts",
		},
	)
)

// Register registers all Prometheus metrics.
func Register() {
	prometheus.MustRegister(OrdersCreatedTotal)
	prometheus.MustRegister(MockOrdersCreatedTotal)
	prometheus.MustRegister(OrderCreationFailuresTotal)
	prometheus.MustRegister(VerificationsOKTotal)
	prometheus.MustRegister(VerificationFailuresTotal)
	prometheus.MustRegister(NotificationsSentTotal)
	prometheus.MustRegister(NotificationsSkippedTotal)
	prometheus.MustRegister(NotificationFailuresTotal)
}
