package subscribers

import (
	"context"
	"fmt"

	"mvola/internal/events"
	"mvola/kit/broker"
)

type NotifierContract interface {
	Notify(ctx context.Context, reference string, msg string)
}

type NotificationEvent struct {
	n NotifierContract
}

func NewNotificationEvent(n NotifierContract) *NotificationEvent {
	return &NotificationEvent{n: n}
}

func (h *NotificationEvent) HandlePaymentInitiated(ctx context.Context, evt broker.Event) error {
	if h.n == nil {
		return nil
	}
	e, ok := evt.(events.PaymentInitiated)
	if !ok {
		return fmt.Errorf("unexpected event type: %T", evt)
	}
	h.n.Notify(ctx, e.CorrelationID, fmt.Sprintf("payment initiated, provider status %d", e.Status))
	return nil
}

func (h *NotificationEvent) HandlePaymentFailed(ctx context.Context, evt broker.Event) error {
	if h.n == nil {
		return nil
	}
	e, ok := evt.(events.PaymentFailed)
	if !ok {
		return fmt.Errorf("unexpected event type: %T", evt)
	}
	h.n.Notify(ctx, e.CorrelationID, "payment failed: "+e.Reason)
	return nil
}

func (h *NotificationEvent) HandleWebhookReceived(ctx context.Context, evt broker.Event) error {
	if h.n == nil {
		return nil
	}
	e, ok := evt.(events.WebhookReceived)
	if !ok {
		return fmt.Errorf("unexpected event type: %T", evt)
	}
	ref, _ := e.Fields["transactionReference"].(string)
	h.n.Notify(ctx, ref, "webhook received")
	return nil
}
