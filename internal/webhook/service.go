package webhook

import (
	"context"
	"time"

	"mvola/internal/events"
	"mvola/kit/broker"
	"mvola/kit/observability"
)

type PublisherContract interface {
	Publish(ctx context.Context, evt broker.Event) []error
}

// Service handles provider callbacks. Payloads are opaque: logged,
// fanned out on the bus, never validated or stored.
type Service struct {
	bus    PublisherContract
	logger *observability.Logger
}

func NewService(bus PublisherContract, logger *observability.Logger) *Service {
	return &Service{bus: bus, logger: logger}
}

func (s *Service) Record(ctx context.Context, payload map[string]any) {
	if s.logger != nil {
		s.logger.Info("webhook received",
			"layer", "service", "component", "webhook", "method", "Record",
			"payload", payload,
		)
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.WebhookReceived{Fields: payload, At: time.Now().UTC()})
	}
}
