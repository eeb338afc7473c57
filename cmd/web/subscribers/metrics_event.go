package subscribers

import (
	"context"

	"mvola/internal/events"
	"mvola/kit/broker"
)

type MetricsContract interface {
	AuthAttemptsAdd(n int64)
	AuthFailuresAdd(n int64)
	PaymentsInitiatedAdd(n int64)
	PaymentsFailedAdd(n int64)
	WebhooksReceivedAdd(n int64)
}

type MetricsEvent struct {
	m MetricsContract
}

func NewMetricsEvent(m MetricsContract) *MetricsEvent {
	return &MetricsEvent{m: m}
}

func (h *MetricsEvent) HandleAny(ctx context.Context, evt broker.Event) error {
	if h.m == nil {
		return nil
	}

	switch evt.(type) {
	case events.AuthSucceeded:
		h.m.AuthAttemptsAdd(1)
	case events.AuthFailed:
		h.m.AuthAttemptsAdd(1)
		h.m.AuthFailuresAdd(1)
	case events.PaymentInitiated:
		h.m.PaymentsInitiatedAdd(1)
	case events.PaymentFailed:
		h.m.PaymentsFailedAdd(1)
	case events.WebhookReceived:
		h.m.WebhooksReceivedAdd(1)
	}
	return nil
}
