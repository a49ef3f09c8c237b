package http

import (
	"net/http"
	"time"
)

// Client is a thin HTTP client bound to one provider's base URL.
// Gateways build requests against BaseURL and send them through
// HTTPClient so the per-provider timeout applies everywhere.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL. A zero timeout
// falls back to 10 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}
