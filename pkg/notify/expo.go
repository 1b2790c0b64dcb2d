package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/models"
)

const pushTimeout = 5 * time.Second

// ExpoClient posts message batches to the Expo push delivery endpoint.
type ExpoClient struct {
	url    string
	client *fasthttp.Client
	log    *log.Logger
}

func NewExpoClient(url string, logger *log.Logger) *ExpoClient {
	return &ExpoClient{
		url: url,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			MaxIdleConnDuration: 30 * time.Second,
			ReadTimeout:         pushTimeout,
			WriteTimeout:        pushTimeout,
			MaxConnWaitTimeout:  pushTimeout,
		},
		log: logger,
	}
}

func (e *ExpoClient) Send(ctx context.Context, messages []models.PushMessage) (string, error) {
	payload, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("failed to marshal push messages: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(http.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.SetRequestURI(e.url)
	req.SetBody(payload)

	timeout := pushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := e.client.DoTimeout(req, resp, timeout); err != nil {
		return "", fmt.Errorf("push request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	body := string(resp.Body())
	if statusCode < 200 || statusCode >= 300 {
		return "", fmt.Errorf("push endpoint returned status %d: %s", statusCode, body)
	}

	return body, nil
}
