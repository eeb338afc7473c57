package events

import "time"

type AuthSucceeded struct {
	ExpiresIn int64     `json:"expires_in"`
	At        time.Time `json:"at"`
}

func (AuthSucceeded) Name() string { return "auth.succeeded" }

type AuthFailed struct {
	Status int       `json:"status"`
	At     time.Time `json:"at"`
}

func (AuthFailed) Name() string { return "auth.failed" }

type PaymentInitiated struct {
	CorrelationID string    `json:"correlation_id"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Status        int       `json:"status"`
	At            time.Time `json:"at"`
}

func (PaymentInitiated) Name() string { return "payment.initiated" }

type PaymentFailed struct {
	CorrelationID string    `json:"correlation_id"`
	Reason        string    `json:"reason"`
	At            time.Time `json:"at"`
}

func (PaymentFailed) Name() string { return "payment.failed" }

type WebhookReceived struct {
	Fields map[string]any `json:"fields"`
	At     time.Time      `json:"at"`
}

func (WebhookReceived) Name() string { return "webhook.received" }
