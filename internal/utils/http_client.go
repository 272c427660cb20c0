package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL with the given per-request
// timeout. A zero timeout leaves the resty default.
//
//	client := utils.NewHTTPClient("https://api.github.com", 10*time.Second)
//	resp, err := client.R().Get("/users/octocat/repos")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithBearer sets the Authorization header used by every request.
func (c *HTTPClient) WithBearer(token string) *HTTPClient {
	if token != "" {
		c.SetAuthToken(token)
	}
	return c
}
