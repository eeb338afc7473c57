package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mvola/cmd/web/validator"
	"mvola/internal/auth"
	"mvola/internal/config"
	"mvola/internal/payment"
	"mvola/kit/gateway"
	"mvola/kit/observability"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mkPaymentReq(t *testing.T, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/payment", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func okAuth() *authServiceMock {
	as := new(authServiceMock)
	as.On("Authenticate", mock.Anything).Return(&auth.Token{AccessToken: "abc123", ExpiresIn: 3600}, nil)
	return as
}

func samplePayment() payment.Request {
	return payment.Request{
		Amount:          "1000",
		Currency:        "Ar",
		DescriptionText: "test",
		DebitParty:      []payment.KeyValue{{Key: "msisdn", Value: "0340000000"}},
		CreditParty:     []payment.KeyValue{{Key: "msisdn", Value: "0350000000"}},
		Metadata:        []payment.KeyValue{},
	}
}

func TestPayment_Create(t *testing.T) {
	overrideCfg := config.Config{OverrideCorrelation: true}

	var tests = []struct {
		name       string
		req        func(t *testing.T) *http.Request
		handler    func() (*Payment, *paymentServiceMock)
		assertResp func(t *testing.T, rr *httptest.ResponseRecorder, ps *paymentServiceMock)
	}{
		{
			name: "passes provider result through verbatim",
			req: func(t *testing.T) *http.Request {
				return mkPaymentReq(t, samplePayment())
			},
			handler: func() (*Payment, *paymentServiceMock) {
				ps := new(paymentServiceMock)
				ps.On("Initiate", mock.Anything, mock.Anything, "abc123").
					Return(payment.Result{Status: http.StatusOK, Data: map[string]any{"transactionReference": "TX1"}})
				return NewPayment(validator.NewJSON(), overrideCfg, okAuth(), ps, observability.NewNopLogger()), ps
			},
			assertResp: func(t *testing.T, rr *httptest.ResponseRecorder, ps *paymentServiceMock) {
				require.Equal(t, http.StatusOK, rr.Code)
				var got map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				require.Equal(t, float64(200), got["status"])
				require.Equal(t, map[string]any{"transactionReference": "TX1"}, got["data"])
			},
		},
		{
			name: "provider failure status passes through",
			req: func(t *testing.T) *http.Request {
				return mkPaymentReq(t, samplePayment())
			},
			handler: func() (*Payment, *paymentServiceMock) {
				ps := new(paymentServiceMock)
				ps.On("Initiate", mock.Anything, mock.Anything, "abc123").
					Return(payment.Result{Status: http.StatusConflict, Data: map[string]any{"fault": "insufficient funds"}})
				return NewPayment(validator.NewJSON(), overrideCfg, okAuth(), ps, observability.NewNopLogger()), ps
			},
			assertResp: func(t *testing.T, rr *httptest.ResponseRecorder, ps *paymentServiceMock) {
				require.Equal(t, http.StatusConflict, rr.Code)
			},
		},
		{
			name: "authentication failure returns 401 and skips provider",
			req: func(t *testing.T) *http.Request {
				return mkPaymentReq(t, samplePayment())
			},
			handler: func() (*Payment, *paymentServiceMock) {
				as := new(authServiceMock)
				as.On("Authenticate", mock.Anything).Return((*auth.Token)(nil), gateway.ErrAuthFailed)
				ps := new(paymentServiceMock)
				return NewPayment(validator.NewJSON(), overrideCfg, as, ps, observability.NewNopLogger()), ps
			},
			assertResp: func(t *testing.T, rr *httptest.ResponseRecorder, ps *paymentServiceMock) {
				require.Equal(t, http.StatusUnauthorized, rr.Code)
				var got map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				require.Equal(t, "Authentication failed", got["error"])
				ps.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "invalid json returns 500 envelope",
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/payment", bytes.NewReader([]byte("{")))
			},
			handler: func() (*Payment, *paymentServiceMock) {
				ps := new(paymentServiceMock)
				return NewPayment(validator.NewJSON(), overrideCfg, okAuth(), ps, observability.NewNopLogger()), ps
			},
			assertResp: func(t *testing.T, rr *httptest.ResponseRecorder, ps *paymentServiceMock) {
				require.Equal(t, http.StatusInternalServerError, rr.Code)
				var got map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				require.Equal(t, "Internal server error", got["error"])
				require.NotEmpty(t, got["message"])
				ps.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything, mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			h, ps := tt.handler()
			h.Create(rr, tt.req(t))
			tt.assertResp(t, rr, ps)
		})
	}
}

func TestPayment_CreateCorrelationOverride(t *testing.T) {
	dirty := samplePayment()
	dirty.RequestDate = "2024-01-01T00:00:00Z"
	dirty.RequestingOrganisationTransactionReference = "ref-1"
	dirty.OriginalTransactionReference = "ref-2"

	var tests = []struct {
		name     string
		cfg      config.Config
		expected payment.Request
	}{
		{
			name: "override on blanks correlation fields",
			cfg:  config.Config{OverrideCorrelation: true},
			expected: func() payment.Request {
				r := dirty
				r.ClearCorrelation()
				return r
			}(),
		},
		{
			name:     "override off preserves caller values",
			cfg:      config.Config{OverrideCorrelation: false},
			expected: dirty,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ps := new(paymentServiceMock)
			ps.On("Initiate", mock.Anything, tt.expected, "abc123").
				Return(payment.Result{Status: http.StatusOK, Data: map[string]any{}})

			h := NewPayment(validator.NewJSON(), tt.cfg, okAuth(), ps, observability.NewNopLogger())
			rr := httptest.NewRecorder()
			h.Create(rr, mkPaymentReq(t, dirty))

			require.Equal(t, http.StatusOK, rr.Code)
			ps.AssertExpectations(t)
		})
	}
}
