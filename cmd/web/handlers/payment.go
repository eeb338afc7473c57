package handlers

import (
	"net/http"

	"mvola/cmd/web/validator"
	"mvola/internal/config"
	"mvola/internal/payment"
	"mvola/kit/observability"
)

type Payment struct {
	json    *validator.JSON
	cfg     config.Config
	auth    AuthServiceContract
	payment PaymentServiceContract
	logger  *observability.Logger
}

func NewPayment(jsonV *validator.JSON, cfg config.Config, authSvc AuthServiceContract, paymentSvc PaymentServiceContract, logger *observability.Logger) *Payment {
	return &Payment{json: jsonV, cfg: cfg, auth: authSvc, payment: paymentSvc, logger: logger}
}

// Create authenticates, then forwards the merchant-pay request. The
// provider is never called when authentication fails.
func (h *Payment) Create(w http.ResponseWriter, r *http.Request) {
	tok, err := h.auth.Authenticate(r.Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("authentication failed", "layer", "handler", "component", "payment", "method", "Create", "error", err.Error())
		}
		writeError(w, err)
		return
	}

	var req payment.Request
	if err := h.json.Decode(w, r, &req); err != nil {
		if h.logger != nil {
			h.logger.Error("payment decode failed", "layer", "handler", "component", "payment", "method", "Create", "error", err.Error())
		}
		writeError(w, err)
		return
	}

	if h.cfg.OverrideCorrelation {
		req.ClearCorrelation()
	}

	res := h.payment.Initiate(r.Context(), req, tok.AccessToken)
	respondJSON(w, res.Status, res)
}
