package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EmailServiceClient hands rendered emails to the email transport. One
// attempt per delivered notification, retrying is the transport's business.
type EmailServiceClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewEmailServiceClient(baseURL string) *EmailServiceClient {
	if baseURL == "" {
		panic("missing email provider base URL")
	}
	return &EmailServiceClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

type sendEmailRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

func (c *EmailServiceClient) SendEmail(ctx context.Context, from string, to string, subject string, htmlBody string) error {
	body, err := json.Marshal(sendEmailRequest{
		From:     from,
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
	if err != nil {
		return fmt.Errorf("could not marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send email to %s: %w", to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code sending email to %s: %d", to, resp.StatusCode)
	}

	return nil
}
