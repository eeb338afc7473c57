package gateway

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Doer issues one outbound HTTP call to the payment provider.
type Doer interface {
	Do(ctx context.Context, method, url string, headers http.Header, body io.Reader) (*http.Response, error)
}

// Client is a thin wrapper over http.Client. A zero timeout keeps the
// transport default.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

func (c *Client) Do(ctx context.Context, method, url string, headers http.Header, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return c.http.Do(req)
}
