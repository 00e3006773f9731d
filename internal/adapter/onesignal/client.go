// Package onesignal sends push notifications to all subscribed dashboard
// devices through the OneSignal REST API.
package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chowline/internal/config"
	"chowline/internal/interfaces"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL string
	appID   string
	apiKey  string
	http    *http.Client
}

func New(cfg config.PushConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		appID:   cfg.AppID,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type pushRequest struct {
	AppID            string            `json:"app_id"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
	IncludedSegments []string          `json:"included_segments"`
	URL              string            `json:"url,omitempty"`
}

func (c *Client) Send(ctx context.Context, n interfaces.PushNotification) error {
	payload := pushRequest{
		AppID:            c.appID,
		Headings:         map[string]string{"en": n.Title},
		Contents:         map[string]string{"en": n.Message},
		IncludedSegments: []string{"All"},
		URL:              n.URL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push gateway returned %d", resp.StatusCode)
	}

	return nil
}
