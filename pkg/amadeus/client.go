// Package amadeus is a minimal client for the Amadeus Self-Service flight
// APIs: offer search and offer price confirmation.
package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"passagens/pkg/config"
)

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	APISecret  string
	Currency   string

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func NewClient(cfg config.AmadeusConfig) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
		BaseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		APIKey:     cfg.APIKey,
		APISecret:  cfg.APISecret,
		Currency:   cfg.Currency,
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody any, respBody any) (int, error) {
	if c.APIKey == "" || c.APISecret == "" {
		return 0, fmt.Errorf("missing amadeus credentials")
	}

	token, err := c.ensureToken(ctx)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if reqBody != nil {
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return 0, err
		}
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, readErr
	}

	// Surface the provider error body for non-2xx so callers can see quota
	// and validation details.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(b) > 0 {
			return resp.StatusCode, fmt.Errorf("amadeus api error: status=%d body=%s", resp.StatusCode, string(b))
		}
		return resp.StatusCode, fmt.Errorf("amadeus api error: status=%d", resp.StatusCode)
	}

	if respBody != nil && len(b) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			return resp.StatusCode, fmt.Errorf("decode amadeus response failed: %w body=%s", err, string(b))
		}
	}

	return resp.StatusCode, nil
}
