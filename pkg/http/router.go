package http

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/apperr"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/gateway"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/metrics"
)

type Router struct {
	App     *fiber.App
	Gateway *gateway.Service
}

func NewRouter(gw *gateway.Service) *Router {
	app := fiber.New(fiber.Config{
		DisableHeaderNormalizing: true,
		JSONEncoder:              json.Marshal,
		JSONDecoder:              json.Unmarshal,
		Prefork:                  false,
		DisableKeepalive:         false,
		ReadTimeout:              10 * time.Second,
		WriteTimeout:             15 * time.Second,
		IdleTimeout:              60 * time.Second,
		BodyLimit:                16 * 1024,
		DisableStartupMessage:    true,
	})

	return &Router{
		App:     app,
		Gateway: gw,
	}
}

func (r *Router) RegisterRoutes() {
	r.App.Get("/", r.Status)
	r.App.Get("/health", r.HealthCheck)
	r.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	r.App.Post("/api/razorpay/create-order", r.CreateOrder)
	r.App.Post("/api/razorpay/verify-payment", r.VerifyPayment)
}

// Status is the liveness endpoint: a short text stating whether processor
// credentials are configured.
func (r *Router) Status(c *fiber.Ctx) error {
	switch {
	case r.Gateway.Configured():
		return c.SendString("Griya payment gateway is running. Razorpay: configured")
	case r.Gateway.MockMode():
		return c.SendString("Griya payment gateway is running. Razorpay: not configured (mock mode)")
	default:
		return c.SendString("Griya payment gateway is running. Razorpay: not configured")
	}
}

func (r *Router) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Service is running",
	})
}

func (r *Router) CreateOrder(c *fiber.Ctx) error {
	var req gateway.CreateOrderRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	order, err := r.Gateway.CreateOrder(c.UserContext(), req)
	if err != nil {
		var unconfigured *gateway.UnconfiguredError
		if errors.As(err, &unconfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":       "Razorpay credentials not configured",
				"amountPaise": unconfigured.AmountPaise,
			})
		}
		metrics.OrderCreationFailuresTotal.Inc()
		return r.respondError(c, err)
	}

	if order.Mock {
		metrics.MockOrdersCreatedTotal.Inc()
	} else {
		metrics.OrdersCreatedTotal.Inc()
	}
	return c.JSON(order)
}

func (r *Router) VerifyPayment(c *fiber.Ctx) error {
	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := r.Gateway.VerifyPayment(body)
	if err != nil {
		if apperr.Kind(err) == "signature_mismatch" {
			metrics.VerificationFailuresTotal.Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":    false,
				"error": "Invalid signature",
			})
		}
		return r.respondError(c, err)
	}

	metrics.VerificationsOKTotal.Inc()
	return c.JSON(result)
}

// kindToMessage maps error classification kinds to the client-facing reason
// strings the storefront expects.
var kindToMessage = map[string]string{
	"invalid_amount": "Invalid amount",
	"missing_fields": "Missing payment verification fields",
	"not_configured": "Razorpay credentials not configured",
}

func (r *Router) respondError(c *fiber.Ctx, err error) error {
	message := kindToMessage[apperr.Kind(err)]
	if message == "" {
		message = err.Error()
	}
	return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{
		"error": message,
	})
}
