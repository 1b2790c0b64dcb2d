package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/config"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/gateway"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/http"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/ledger"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/metrics"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/razorpay"
)

func main() {
	logger := log.New(os.Stdout, "[MAIN] ", log.LstdFlags)
	cfg := config.LoadConfig()

	metrics.Register()

	var orders gateway.OrderCreator
	if cfg.RazorpayConfigured() {
		orders = razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayBaseURL, logger)
		logger.Println("Razorpay credentials configured")
	} else if cfg.MockPayments {
		logger.Println("Razorpay credentials missing, mock mode enabled")
	} else {
		logger.Println("Razorpay credentials missing, payment endpoints will return 503")
	}

	var recorder gateway.Recorder
	if cfg.DatabaseURL != "" {
		led, err := ledger.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Printf("Audit ledger disabled: %v", err)
		} else {
			defer led.Close()
			recorder = led
		}
	}

	gw := gateway.New(cfg, orders, recorder, logger)

	router := http.NewRouter(gw)
	router.RegisterRoutes()

	// Setup graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Println("Shutting down gracefully...")
		if err := router.App.Shutdown(); err != nil {
			logger.Printf("Server shutdown failed: %v", err)
		}
	}()

	logger.Printf("Starting API server on port %s", cfg.Port)
	if err := router.App.Listen(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
