package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/models"
)

const (
	tokensKey      = "push_tokens"
	orderKeyPrefix = "orders:"
	eventsKey      = "rider_assignments"
)

// RedisStore backs the notifier with Redis: push tokens in a hash, order
// records as JSON strings, assignment events on a list.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(conn string) (*RedisStore, error) {
	if conn == "" {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         conn,
		Password:     "",
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  800 * time.Millisecond,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisStore{client: client}, nil
}

func retryWithBackoff(fn func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(float64(30*time.Millisecond) * math.Pow(1.4, float64(attempt-1)))
			if delay > 250*time.Millisecond {
				delay = 250 * time.Millisecond
			}
			time.Sleep(delay)
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
	}

	return lastErr
}

func (r *RedisStore) Token(ctx context.Context, riderID string) (string, error) {
	token, err := r.client.HGet(ctx, tokensKey, riderID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (r *RedisStore) SetToken(ctx context.Context, riderID, token string) error {
	return r.client.HSet(ctx, tokensKey, riderID, token).Err()
}

func (r *RedisStore) Order(ctx context.Context, orderKey string) (*models.OrderRecord, error) {
	raw, err := r.client.Get(ctx, orderKeyPrefix+orderKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var order models.OrderRecord
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", orderKey, err)
	}
	return &order, nil
}

func (r *RedisStore) PutOrder(ctx context.Context, order *models.OrderRecord) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, orderKeyPrefix+order.ID, raw, 0).Err()
}

// Enqueue pushes an assignment event with retries: losing the event here
// means losing the notification entirely, there is no other delivery path.
func (r *RedisStore) Enqueue(ctx context.Context, evt *models.AssignmentEvent) error {
	raw, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return retryWithBackoff(func() error {
		return r.client.LPush(ctx, eventsKey, raw).Err()
	}, 3)
}

func (r *RedisStore) DequeueBatch(ctx context.Context, batchSize int) ([]*models.AssignmentEvent, error) {
	events := make([]*models.AssignmentEvent, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		raw, err := r.client.RPop(ctx, eventsKey).Result()
		if err == redis.Nil {
			break
		}
		if err != nil {
			return events, err
		}
		var evt models.AssignmentEvent
		if err := json.Unmarshal([]byte(raw), &evt); err != nil {
			// Skip malformed entries rather than wedging the queue.
			continue
		}
		events = append(events, &evt)
	}
	return events, nil
}

func (r *RedisStore) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
