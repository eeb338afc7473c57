package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"mvola/internal/config"
	"mvola/internal/events"
	"mvola/kit/observability"

	"github.com/google/uuid"
)

// Service sends merchant-pay requests to the provider. One fresh
// correlation identifier per call, used only for the X-CorrelationID
// header.
type Service struct {
	cfg    config.Config
	gw     GatewayContract
	bus    PublisherContract
	logger *observability.Logger

	newCorrelationID func() string
}

func NewService(cfg config.Config, gw GatewayContract, bus PublisherContract, logger *observability.Logger) *Service {
	return &Service{
		cfg:              cfg,
		gw:               gw,
		bus:              bus,
		logger:           logger,
		newCorrelationID: uuid.NewString,
	}
}

// Initiate posts the request to the merchant-pay endpoint with a bearer
// token obtained by the caller. Provider status and body pass through
// untouched; transport errors and unparseable bodies both synthesize a
// 500 result. Precondition: req.DebitParty is non-empty.
func (s *Service) Initiate(ctx context.Context, req Request, token string) Result {
	correlationID := s.newCorrelationID()

	payload, err := json.Marshal(req)
	if err != nil {
		return s.fail(ctx, correlationID, err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("Version", "1.0")
	headers.Set("X-CorrelationID", correlationID)
	headers.Set("UserLanguage", "mg")
	headers.Set("UserAccountIdentifier", "msisdn;"+req.DebitParty[0].Value)
	headers.Set("partnerName", s.cfg.PartnerName)
	headers.Set("Content-Type", "application/json")
	headers.Set("X-Callback-URL", "")
	headers.Set("Cache-Control", "no-cache")

	u := s.cfg.BaseURL + s.cfg.MerchantPayPath
	if s.logger != nil {
		s.logger.Info("merchantpay request",
			"layer", "service", "component", "payment", "method", "Initiate",
			"url", u, "correlation_id", correlationID,
			"user_account", headers.Get("UserAccountIdentifier"),
			"body", string(payload),
		)
	}

	resp, err := s.gw.Do(ctx, http.MethodPost, u, headers, bytes.NewReader(payload))
	if err != nil {
		return s.fail(ctx, correlationID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.fail(ctx, correlationID, err)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return s.fail(ctx, correlationID, err)
	}

	if s.logger != nil {
		s.logger.Info("merchantpay response",
			"layer", "service", "component", "payment", "method", "Initiate",
			"correlation_id", correlationID, "status", resp.StatusCode, "body", string(raw),
		)
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.PaymentInitiated{
			CorrelationID: correlationID,
			Amount:        req.Amount,
			Currency:      req.Currency,
			Status:        resp.StatusCode,
			At:            time.Now().UTC(),
		})
	}
	return Result{Status: resp.StatusCode, Data: data}
}

func (s *Service) fail(ctx context.Context, correlationID string, err error) Result {
	if s.logger != nil {
		s.logger.Error("merchantpay error",
			"layer", "service", "component", "payment", "method", "Initiate",
			"correlation_id", correlationID, "error", err.Error(),
		)
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.PaymentFailed{CorrelationID: correlationID, Reason: err.Error(), At: time.Now().UTC()})
	}
	return Result{Status: http.StatusInternalServerError, Data: map[string]any{"error": err.Error()}}
}
