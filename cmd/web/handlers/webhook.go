package handlers

import (
	"net/http"

	"mvola/cmd/web/validator"
	"mvola/kit/observability"
)

type Webhook struct {
	json    *validator.JSON
	webhook WebhookServiceContract
	logger  *observability.Logger
}

func NewWebhook(jsonV *validator.JSON, webhookSvc WebhookServiceContract, logger *observability.Logger) *Webhook {
	return &Webhook{json: jsonV, webhook: webhookSvc, logger: logger}
}

// Receive acknowledges provider callbacks unconditionally. No signature or
// origin verification is applied.
func (h *Webhook) Receive(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := h.json.Decode(w, r, &payload); err != nil {
		if h.logger != nil {
			h.logger.Error("webhook decode failed", "layer", "handler", "component", "webhook", "method", "Receive", "error", err.Error())
		}
		writeError(w, err)
		return
	}

	h.webhook.Record(r.Context(), payload)
	respondJSON(w, http.StatusOK, map[string]any{"received": true})
}
