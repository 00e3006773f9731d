// Package termii sends transactional SMS through the Termii messaging API.
package termii

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chowline/internal/config"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL  string
	senderID string
	apiKey   string
	http     *http.Client
}

func New(cfg config.SMSConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		senderID: cfg.SenderID,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

type smsRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	SMS     string `json:"sms"`
	Type    string `json:"type"`
	Channel string `json:"channel"`
	APIKey  string `json:"api_key"`
}

func (c *Client) Send(ctx context.Context, to, text string) error {
	payload := smsRequest{
		To:      to,
		From:    c.senderID,
		SMS:     text,
		Type:    "plain",
		Channel: "generic",
		APIKey:  c.apiKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/sms/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}

	return nil
}
