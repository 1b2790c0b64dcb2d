package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/config"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/notify"
	"github.com/arunteja30/griya-Ecom-sub001/pkg/store"
)

// Consumer drains rider-assignment events from the queue and hands them to
// the notifier. Events for different orders are independent and run
// concurrently; a duplicate notification on a rare same-order race is
// cosmetic, so no per-order coordination is done.
type Consumer struct {
	queue    store.EventQueue
	notifier *notify.Notifier
	log      *log.Logger
}

func NewConsumer(queue store.EventQueue, notifier *notify.Notifier, log *log.Logger) *Consumer {
	return &Consumer{
		queue:    queue,
		notifier: notifier,
		log:      log,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.processBatch(ctx)
		}
	}
}

func (c *Consumer) processBatch(ctx context.Context) {
	events, err := c.queue.DequeueBatch(ctx, 10)
	if err != nil {
		c.log.Printf("Failed to dequeue batch: %v", err)
		return
	}

	if len(events) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(10)
	for _, evt := range events {
		evt := evt
		g.Go(func() error {
			c.notifier.Notify(gctx, *evt)
			return nil
		})
	}
	_ = g.Wait()
}

func main() {
	logger := log.New(os.Stdout, "[NOTIFIER] ", log.LstdFlags)
	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Println("Shutting down gracefully...")
		cancel()
	}()

	redisStore, err := store.NewRedisStore(cfg.RedisConn)
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisStore.Close()

	expo := notify.NewExpoClient(cfg.ExpoPushURL, logger)
	notifier := notify.New(redisStore, redisStore, expo, logger)

	consumer := NewConsumer(redisStore, notifier, logger)

	logger.Println("Starting assignment notifier service")
	consumer.Start(ctx)
}
