package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"storefront/entities"
	"time"
)

// TopicServiceClient talks to the external pub/sub provider. Publishing is
// best effort; delivery back to us happens through the provider's push
// callback, not through this client.
type TopicServiceClient struct {
	httpClient *http.Client
	baseURL    string
	topicRef   string
}

func NewTopicServiceClient(baseURL string, topicRef string) *TopicServiceClient {
	if baseURL == "" {
		panic("missing pub/sub provider base URL")
	}
	return &TopicServiceClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		topicRef:   topicRef,
	}
}

type publishRequest struct {
	TopicRef string `json:"topic_ref"`
	Message  string `json:"message"`
}

func (c *TopicServiceClient) Publish(ctx context.Context, msg entities.TopicMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("could not marshal topic message: %w", err)
	}

	body, err := json.Marshal(publishRequest{
		TopicRef: c.topicRef,
		Message:  string(payload),
	})
	if err != nil {
		return fmt.Errorf("could not marshal publish request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/publish", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build publish request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not publish to topic %s: %w", c.topicRef, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code publishing to topic %s: %d", c.topicRef, resp.StatusCode)
	}

	return nil
}

type confirmSubscriptionRequest struct {
	TopicRef string `json:"topic_ref"`
	Token    string `json:"token"`
}

// ConfirmSubscription answers the provider's handshake challenge. The call is
// idempotent on the provider side, repeated confirmations are harmless.
func (c *TopicServiceClient) ConfirmSubscription(ctx context.Context, topicRef string, token string) error {
	body, err := json.Marshal(confirmSubscriptionRequest{
		TopicRef: topicRef,
		Token:    token,
	})
	if err != nil {
		return fmt.Errorf("could not marshal confirm request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/confirm", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build confirm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not confirm subscription to %s: %w", topicRef, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code confirming subscription to %s: %d", topicRef, resp.StatusCode)
	}

	return nil
}
