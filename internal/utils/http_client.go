package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies the mirror client to the remote store.
const userAgent = "go-content-mirror/1"

// HTTPClient embeds *resty.Client with the mirror's default headers applied.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool that sends
// JSON requests to baseURL. A zero timeout leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
