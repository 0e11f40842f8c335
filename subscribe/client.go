package subscribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"aurora/models"
)

// HTTPClient posts subscription requests to a real endpoint as a JSON
// body containing the email address. One attempt per submission; there is
// no retry logic, a failed attempt is surfaced to the user who retries
// manually.
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPClient creates a subscription client for the given endpoint URL.
func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe sends one subscription attempt. A reachable endpoint always
// yields a result (accepted or rejected); an error return means the call
// itself failed and the form shows its connectivity message instead.
func (c *HTTPClient) Subscribe(ctx context.Context, email string) (models.SubscribeResult, error) {
	body, err := json.Marshal(subscribeRequest{Email: email})
	if err != nil {
		return models.SubscribeResult{}, fmt.Errorf("encoding subscribe request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return models.SubscribeResult{}, fmt.Errorf("building subscribe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Subscribe] POST %s failed: %v", c.endpoint, err)
		return models.SubscribeResult{}, err
	}
	defer resp.Body.Close()

	var result models.SubscribeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.SubscribeResult{}, fmt.Errorf("decoding subscribe response: %w", err)
	}

	log.Printf("[Subscribe] POST %s -> ok=%v", c.endpoint, result.OK)
	return result, nil
}

// Func adapts the client to the injectable Func signature the form takes.
func (c *HTTPClient) Func() Func {
	return c.Subscribe
}
