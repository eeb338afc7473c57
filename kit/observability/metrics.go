package observability

import "sync/atomic"

type Metrics struct {
	AuthAttempts      atomic.Int64
	AuthFailures      atomic.Int64
	PaymentsInitiated atomic.Int64
	PaymentsFailed    atomic.Int64
	WebhooksReceived  atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) AuthAttemptsAdd(n int64) {
	m.AuthAttempts.Add(n)
}

func (m *Metrics) AuthFailuresAdd(n int64) {
	m.AuthFailures.Add(n)
}

func (m *Metrics) PaymentsInitiatedAdd(n int64) {
	m.PaymentsInitiated.Add(n)
}

func (m *Metrics) PaymentsFailedAdd(n int64) {
	m.PaymentsFailed.Add(n)
}

func (m *Metrics) WebhooksReceivedAdd(n int64) {
	m.WebhooksReceived.Add(n)
}
