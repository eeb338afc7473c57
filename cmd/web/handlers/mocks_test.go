package handlers

import (
	"context"

	"mvola/internal/auth"
	"mvola/internal/health"
	"mvola/internal/payment"

	"github.com/stretchr/testify/mock"
)

type authServiceMock struct{ mock.Mock }

func (m *authServiceMock) Authenticate(ctx context.Context) (*auth.Token, error) {
	args := m.Called(ctx)
	tok, _ := args.Get(0).(*auth.Token)
	return tok, args.Error(1)
}

type paymentServiceMock struct{ mock.Mock }

func (m *paymentServiceMock) Initiate(ctx context.Context, req payment.Request, token string) payment.Result {
	args := m.Called(ctx, req, token)
	return args.Get(0).(payment.Result)
}

type webhookServiceMock struct{ mock.Mock }

func (m *webhookServiceMock) Record(ctx context.Context, payload map[string]any) {
	m.Called(ctx, payload)
}

type healthServiceMock struct{ mock.Mock }

func (m *healthServiceMock) Check(ctx context.Context) health.Result {
	args := m.Called(ctx)
	return args.Get(0).(health.Result)
}
