// Package paystack implements payment verification against the Paystack
// transaction API.
package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chowline/internal/config"
	"chowline/internal/domain"
	"chowline/internal/interfaces"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func New(cfg config.PaymentConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		http:      &http.Client{Timeout: requestTimeout},
	}
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status string `json:"status"`
		Amount int64  `json:"amount"`
	} `json:"data"`
}

// Verify looks up a transaction by reference. Read-only; a single attempt
// per call, the storefront resubmits on failure.
func (c *Client) Verify(ctx context.Context, reference string) (*interfaces.VerifiedPayment, error) {
	if reference == "" {
		return nil, fmt.Errorf("reference is required: %w", domain.ErrInvalidRequest)
	}

	url := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway unreachable: %v: %w", err, domain.ErrVerificationFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned %d: %w", resp.StatusCode, domain.ErrVerificationFailed)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %v: %w", err, domain.ErrVerificationFailed)
	}

	return &interfaces.VerifiedPayment{
		Status: body.Data.Status,
		Amount: body.Data.Amount,
	}, nil
}
