package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"mvola/internal/auth"
	"mvola/internal/health"
	"mvola/internal/payment"
	"mvola/kit/gateway"
)

type AuthServiceContract interface {
	Authenticate(ctx context.Context) (*auth.Token, error)
}

type PaymentServiceContract interface {
	Initiate(ctx context.Context, req payment.Request, token string) payment.Result
}

type WebhookServiceContract interface {
	Record(ctx context.Context, payload map[string]any)
}

type HealthServiceContract interface {
	Check(ctx context.Context) health.Result
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// writeError is the single error-to-status mapping for the whole surface.
// Authentication failures answer 401 with a fixed message; everything else
// answers the generic 500 envelope carrying the underlying message.
func writeError(w http.ResponseWriter, err error) {
	if gateway.IsAuthFailed(err) {
		respondJSON(w, http.StatusUnauthorized, map[string]any{"error": "Authentication failed"})
		return
	}
	respondJSON(w, http.StatusInternalServerError, map[string]any{
		"error":   "Internal server error",
		"message": err.Error(),
	})
}
