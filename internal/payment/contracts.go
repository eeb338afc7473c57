package payment

import (
	"context"
	"io"
	"net/http"

	"mvola/kit/broker"
)

type GatewayContract interface {
	Do(ctx context.Context, method, url string, headers http.Header, body io.Reader) (*http.Response, error)
}

type PublisherContract interface {
	Publish(ctx context.Context, evt broker.Event) []error
}
