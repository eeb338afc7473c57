package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mvola/cmd/web/validator"
	"mvola/kit/observability"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWebhook_Receive(t *testing.T) {
	var tests = []struct {
		name string
		body string
	}{
		{name: "arbitrary payload", body: `{"foo":"bar"}`},
		{name: "empty object", body: `{}`},
		{name: "provider callback shape", body: `{"transactionReference":"TX1","status":"completed","amount":"1000"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ws := new(webhookServiceMock)
			ws.On("Record", mock.Anything, mock.Anything).Once()

			h := NewWebhook(validator.NewJSON(), ws, observability.NewNopLogger())
			rr := httptest.NewRecorder()
			h.Receive(rr, httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(tt.body))))

			require.Equal(t, http.StatusOK, rr.Code)
			var got map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			require.Equal(t, map[string]any{"received": true}, got)
			ws.AssertExpectations(t)
		})
	}
}

func TestWebhook_ReceiveInvalidJSON(t *testing.T) {
	t.Parallel()
	ws := new(webhookServiceMock)

	h := NewWebhook(validator.NewJSON(), ws, observability.NewNopLogger())
	rr := httptest.NewRecorder()
	h.Receive(rr, httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte("not json"))))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	ws.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}
